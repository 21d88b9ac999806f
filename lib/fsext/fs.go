// Package fsext provides extended file system functions on top of afero.
package fsext

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Fs represents a file system.
type Fs = afero.Fs

// FilePathSeparator is the FilePathSeparator to be used within a file system.
const FilePathSeparator = afero.FilePathSeparator

// NewMemMapFs returns a Fs that is in memory.
func NewMemMapFs() Fs {
	return afero.NewMemMapFs()
}

// NewOsFs returns a Fs backed by the real OS filesystem.
func NewOsFs() Fs {
	return afero.NewOsFs()
}

// NewReadOnlyFs returns a Fs wrapping the provided one and returning an error
// on any non-read operation.
func NewReadOnlyFs(fs Fs) Fs {
	return afero.NewReadOnlyFs(fs)
}

// WriteFile writes the provided data to the provided fs in the provided filename.
func WriteFile(fs Fs, filename string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

// ReadFile reads the whole file from the filesystem.
func ReadFile(fs Fs, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

// ReadDir reads the info for each file in the provided dirname.
func ReadDir(fs Fs, dirname string) ([]fs.FileInfo, error) {
	return afero.ReadDir(fs, dirname)
}

// Exists checks if the provided path exists on the filesystem.
func Exists(fs Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// IsDir checks if the provided path is a directory.
func IsDir(fs Fs, path string) (bool, error) {
	return afero.IsDir(fs, path)
}

// DirExists checks if the provided path exists and is a directory.
func DirExists(fs Fs, path string) (bool, error) {
	return afero.DirExists(fs, path)
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root.
func Walk(fs Fs, root string, walkFn filepath.WalkFunc) error {
	return afero.Walk(fs, root, walkFn)
}

// JoinFilePath is a wrapper around filepath.Join. Starting with go 1.20, on
// Windows Clean (used inside filepath.Join) does not modify the volume name
// other than to replace occurrences of "/" with `\`, so paths coming from a
// virtual filesystem need a leading slash before joining.
func JoinFilePath(b, p string) string {
	return filepath.Join(b, filepath.Clean("/"+p))
}
