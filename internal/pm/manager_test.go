package pm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/errext/exitcodes"
)

func lookPathIn(available map[string]string) LookPathFunc {
	return func(file string) (string, error) {
		if path, ok := available[file]; ok {
			return path, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("poetry wins when both are installed", func(t *testing.T) {
		t.Parallel()
		mgr, err := Detect(lookPathIn(map[string]string{
			"poetry": "/usr/local/bin/poetry",
			"pdm":    "/usr/local/bin/pdm",
		}), "")
		require.NoError(t, err)
		assert.Equal(t, Poetry, mgr.Kind)
		assert.Equal(t, "/usr/local/bin/poetry", mgr.Path)
	})

	t.Run("pdm is the fallback", func(t *testing.T) {
		t.Parallel()
		mgr, err := Detect(lookPathIn(map[string]string{"pdm": "/usr/local/bin/pdm"}), "")
		require.NoError(t, err)
		assert.Equal(t, PDM, mgr.Kind)
	})

	t.Run("pinned manager skips detection order", func(t *testing.T) {
		t.Parallel()
		mgr, err := Detect(lookPathIn(map[string]string{
			"poetry": "/usr/local/bin/poetry",
			"pdm":    "/usr/local/bin/pdm",
		}), "pdm")
		require.NoError(t, err)
		assert.Equal(t, PDM, mgr.Kind)
	})

	t.Run("nothing installed", func(t *testing.T) {
		t.Parallel()
		_, err := Detect(lookPathIn(nil), "")
		require.ErrorIs(t, err, ErrNotFound)

		var ec errext.HasExitCode
		require.ErrorAs(t, err, &ec)
		assert.Equal(t, exitcodes.MissingPackageManager, ec.ExitCode())

		var hint errext.HasHint
		require.ErrorAs(t, err, &hint)
		assert.Contains(t, hint.Hint(), "poetry")
	})

	t.Run("pinned manager missing from the PATH", func(t *testing.T) {
		t.Parallel()
		_, err := Detect(lookPathIn(map[string]string{"poetry": "/usr/local/bin/poetry"}), "pdm")
		require.ErrorIs(t, err, ErrNotFound)

		var ec errext.HasExitCode
		require.ErrorAs(t, err, &ec)
		assert.Equal(t, exitcodes.MissingPackageManager, ec.ExitCode())
	})

	t.Run("unsupported pin", func(t *testing.T) {
		t.Parallel()
		_, err := Detect(lookPathIn(map[string]string{"pipenv": "/usr/local/bin/pipenv"}), "pipenv")
		require.Error(t, err)

		var ec errext.HasExitCode
		require.ErrorAs(t, err, &ec)
		assert.Equal(t, exitcodes.InvalidConfig, ec.ExitCode())
	})
}

func TestInstallArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"install", "--no-interaction"},
		Manager{Kind: Poetry}.InstallArgs(false))
	assert.Equal(t, []string{"install", "--only", "main", "--no-interaction"},
		Manager{Kind: Poetry}.InstallArgs(true))
	assert.Equal(t, []string{"install", "--dev"},
		Manager{Kind: PDM}.InstallArgs(false))
	assert.Equal(t, []string{"install", "--prod"},
		Manager{Kind: PDM}.InstallArgs(true))
}

func TestRunArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"run", "pytest", "-x"},
		Manager{Kind: Poetry}.RunArgs("pytest", "-x"))
	assert.Equal(t, []string{"run", "ipython"},
		Manager{Kind: PDM}.RunArgs("ipython"))
}
