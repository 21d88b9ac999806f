package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/internal/lib/testutils"
	"github.com/devrun-sh/devrun/lib/fsext"
)

func makeTree(t *testing.T, paths ...string) fsext.Fs {
	t.Helper()
	files := make(map[string][]byte, len(paths))
	for _, path := range paths {
		files[path] = []byte("x")
	}
	return testutils.MakeMemMapFs(t, files)
}

func defaultOptions() Options {
	return Options{
		DirPatterns: []string{"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache"},
		Files:       []string{".coverage", "htmlcov"},
		LogDir:      "logs",
		SkipDirs:    DefaultSkipDirs(),
	}
}

func TestCleanRemovesMatchingDirsEverywhere(t *testing.T) {
	t.Parallel()

	fs := makeTree(t,
		"/proj/src/__pycache__/a.pyc",
		"/proj/src/sub/pkg/__pycache__/b.pyc",
		"/proj/.pytest_cache/CACHEDIR.TAG",
		"/proj/src/app.py",
	)

	res, err := Clean(fs, "/proj", defaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Removed, 3)

	for _, gone := range []string{
		"/proj/src/__pycache__",
		"/proj/src/sub/pkg/__pycache__",
		"/proj/.pytest_cache",
	} {
		exists, err := fsext.Exists(fs, gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}

	exists, err := fsext.Exists(fs, "/proj/src/app.py")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCleanSkipsVendoredTrees(t *testing.T) {
	t.Parallel()

	fs := makeTree(t, "/proj/.venv/lib/__pycache__/a.pyc")

	res, err := Clean(fs, "/proj", defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Removed)

	exists, err := fsext.Exists(fs, "/proj/.venv/lib/__pycache__")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCleanRemovesRootFilesAndLogContents(t *testing.T) {
	t.Parallel()

	fs := makeTree(t,
		"/proj/.coverage",
		"/proj/htmlcov/index.html",
		"/proj/logs/app.log",
		"/proj/logs/error.log",
	)

	res, err := Clean(fs, "/proj", defaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Removed, 4)

	// the log directory itself stays
	isDir, err := fsext.IsDir(fs, "/proj/logs")
	require.NoError(t, err)
	assert.True(t, isDir)

	for _, gone := range []string{"/proj/.coverage", "/proj/htmlcov", "/proj/logs/app.log"} {
		exists, err := fsext.Exists(fs, gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}
}

func TestCleanOnEmptyTreeIsNoop(t *testing.T) {
	t.Parallel()

	fs := fsext.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))

	res, err := Clean(fs, "/proj", defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Removed)

	// twice in a row is fine too
	res, err = Clean(fs, "/proj", defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Removed)
}
