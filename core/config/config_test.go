package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownSeconds)
	assert.Equal(t, "countries.csv", cfg.Source.TabularPath)
	assert.True(t, cfg.Source.RemoteEnabled)
	assert.True(t, cfg.Source.PreferTabular)
	assert.Equal(t, 20, cfg.Source.TimeoutSeconds)
	assert.Equal(t, "export.csv", cfg.Export.Path)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "countries", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SOURCE_REMOTE_ENABLED", "false")
	t.Setenv("SOURCE_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.False(t, cfg.Source.RemoteEnabled)
	assert.Equal(t, 5, cfg.Source.TimeoutSeconds)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SOURCE_TABULAR_PATH=data/paises.csv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SOURCE_TABULAR_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "data/paises.csv", cfg.Source.TabularPath)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Name string `mapstructure:"name" default:"x"`
	}
	type outer struct {
		Inner   inner  `mapstructure:"inner"`
		Flag    string `mapstructure:"flag"`
		Skipped string
	}

	v := viper.New()
	bindValues(v, &outer{}, "")

	assert.Equal(t, "x", v.GetString("inner.name"))
	assert.True(t, v.IsSet("flag"))
	assert.False(t, v.IsSet("skipped"))
}
