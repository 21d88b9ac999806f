// Package clean removes Python tool caches and stale logs from a project tree.
package clean

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/devrun-sh/devrun/lib/fsext"
)

// Options configures what a cleanup pass removes.
type Options struct {
	// DirPatterns are directory base names (filepath.Match patterns) removed
	// wherever they appear in the tree.
	DirPatterns []string
	// Files are project-root relative files or directories removed when
	// present, e.g. ".coverage" or "htmlcov".
	Files []string
	// LogDir is a project-root relative directory whose contents are
	// removed, keeping the directory itself.
	LogDir string
	// SkipDirs are directory base names that are never descended into.
	SkipDirs []string
}

// DefaultSkipDirs are trees that are never worth scanning for caches.
func DefaultSkipDirs() []string {
	return []string{".git", ".hg", ".venv", "venv", "node_modules"}
}

// Result lists what a cleanup pass removed.
type Result struct {
	Removed []string
}

// Clean removes everything Options describe under root. Nothing matching is
// not an error: cleaning an already clean tree is a no-op.
func Clean(fsys fsext.Fs, root string, opts Options) (Result, error) {
	res := Result{}

	for _, rel := range opts.Files {
		path := fsext.JoinFilePath(root, rel)
		exists, err := fsext.Exists(fsys, path)
		if err != nil {
			return res, err
		}
		if !exists {
			continue
		}
		if err := fsys.RemoveAll(path); err != nil {
			return res, err
		}
		res.Removed = append(res.Removed, path)
	}

	err := fsext.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			// A tree that vanished mid-walk (or never existed) is already clean.
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if !info.IsDir() || path == root {
			return nil
		}

		base := info.Name()
		for _, skip := range opts.SkipDirs {
			if base == skip {
				return filepath.SkipDir
			}
		}
		for _, pattern := range opts.DirPatterns {
			ok, merr := filepath.Match(pattern, base)
			if merr != nil {
				return merr
			}
			if !ok {
				continue
			}
			if rerr := fsys.RemoveAll(path); rerr != nil {
				return rerr
			}
			res.Removed = append(res.Removed, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	if opts.LogDir != "" {
		logDir := fsext.JoinFilePath(root, opts.LogDir)
		entries, err := fsext.ReadDir(fsys, logDir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, nil
			}
			return res, err
		}
		for _, entry := range entries {
			path := fsext.JoinFilePath(logDir, entry.Name())
			if err := fsys.RemoveAll(path); err != nil {
				return res, err
			}
			res.Removed = append(res.Removed, path)
		}
	}

	return res, nil
}
