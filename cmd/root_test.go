package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home-assistant/sarifmerge/internal/config"
)

func TestInitConfigMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(config.EnvConfigFile, "")
	cfgFile = ""

	require.NoError(t, initConfig(rootCmd, nil))
	require.NotNil(t, AppConfig)
	assert.Empty(t, AppConfig.Merge.Pattern)
}

func TestInitConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("merge:\n  pattern: \"*.json\"\n"), 0o644))
	t.Setenv(config.EnvConfigFile, path)
	cfgFile = ""

	require.NoError(t, initConfig(rootCmd, nil))
	assert.Equal(t, "*.json", AppConfig.Merge.Pattern)
}

func TestInitConfigExplicitFileMissing(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "absent.yml")
	t.Cleanup(func() { cfgFile = "" })

	assert.Error(t, initConfig(rootCmd, nil))
}

func TestInitConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("merge:\n  output: reports/merged.sarif\n"), 0o644))
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	assert.Error(t, initConfig(rootCmd, nil))
}
