package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	conf := NewConfig()
	assert.Equal(t, "src.app.main:get_application", conf.App.String)
	assert.Equal(t, "127.0.0.1", conf.Host.String)
	assert.EqualValues(t, 8000, conf.Port.Int64)
	assert.EqualValues(t, 4, conf.Workers.Int64)
	assert.Equal(t, "src", conf.SourceDir.String)
	assert.Equal(t, "logs", conf.LogDir.String)
	assert.Equal(t, "docker-compose.test.yml", conf.ComposeFile.String)
	assert.Contains(t, conf.CleanPatterns, "__pycache__")
	assert.False(t, conf.PackageManager.Valid)
}

func TestConfigApply(t *testing.T) {
	t.Parallel()

	conf := NewConfig().Apply(Config{
		Port:      null.IntFrom(9000),
		SourceDir: null.StringFrom("app"),
	})

	assert.EqualValues(t, 9000, conf.Port.Int64)
	assert.Equal(t, "app", conf.SourceDir.String)
	// untouched fields keep their defaults
	assert.Equal(t, "127.0.0.1", conf.Host.String)
	assert.EqualValues(t, 4, conf.Workers.Int64)
}

func TestConfigApplyIgnoresEmptyStrings(t *testing.T) {
	t.Parallel()

	conf := NewConfig().Apply(Config{App: null.NewString("", true)})
	assert.Equal(t, "src.app.main:get_application", conf.App.String)
}

func TestGetConsolidatedConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults only", func(t *testing.T) {
		t.Parallel()
		conf, err := GetConsolidatedConfig(nil, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 8000, conf.Port.Int64)
	})

	t.Run("json file overrides defaults", func(t *testing.T) {
		t.Parallel()
		conf, err := GetConsolidatedConfig(
			[]byte(`{"port":9000,"packageManager":"pdm"}`), nil)
		require.NoError(t, err)
		assert.EqualValues(t, 9000, conf.Port.Int64)
		assert.Equal(t, "pdm", conf.PackageManager.String)
	})

	t.Run("environment overrides the json file", func(t *testing.T) {
		t.Parallel()
		conf, err := GetConsolidatedConfig(
			[]byte(`{"host":"0.0.0.0","port":9000}`),
			map[string]string{"DEVRUN_PORT": "9100", "DEVRUN_WORKERS": "8"})
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", conf.Host.String)
		assert.EqualValues(t, 9100, conf.Port.Int64)
		assert.EqualValues(t, 8, conf.Workers.Int64)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := GetConsolidatedConfig([]byte(`{"port":`), nil)
		require.Error(t, err)
	})
}
