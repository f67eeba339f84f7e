package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sarifmerge.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  json_format: true
merge:
  pattern: "*.sarif.json"
  output: all.sarif
  strip_prefix: "work/android/android/"
  auto_strip: true
`)

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, GetBoolValue(cfg, "Logger.JSONFormat", false))
	assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true), "unset pointer falls back to default")
	assert.Equal(t, "*.sarif.json", cfg.Merge.Pattern)
	assert.Equal(t, "all.sarif", cfg.Merge.Output)
	assert.Equal(t, "work/android/android/", cfg.Merge.StripPrefix)
	assert.True(t, cfg.Merge.AutoStrip)
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := LoadConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = LoadConfig(missing, true)
	assert.Error(t, err)
}

func TestLoadConfigRejectsDirectory(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), true)
	assert.ErrorContains(t, err, "is a directory")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "logger: [unclosed")
	_, err := LoadConfig(path, true)
	assert.ErrorContains(t, err, "failed to decode")
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	path, explicit := ConfigPath("")
	assert.Equal(t, DefaultConfigFile, path)
	assert.False(t, explicit)

	t.Setenv(EnvConfigFile, "/etc/sarifmerge.yml")
	path, explicit = ConfigPath("")
	assert.Equal(t, "/etc/sarifmerge.yml", path)
	assert.True(t, explicit)

	path, explicit = ConfigPath("custom.yml")
	assert.Equal(t, "custom.yml", path)
	assert.True(t, explicit)
}

func TestMergeDefaults(t *testing.T) {
	assert.Equal(t, DefaultPattern, GetMergePattern(nil))
	assert.Equal(t, DefaultOutput, GetMergeOutput(&Config{}))

	cfg := &Config{Merge: Merge{Pattern: "*.json", Output: "out.sarif"}}
	assert.Equal(t, "*.json", GetMergePattern(cfg))
	assert.Equal(t, "out.sarif", GetMergeOutput(cfg))
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{name: "nil", cfg: nil, wantErr: "configuration object is nil"},
		{name: "empty", cfg: &Config{}},
		{name: "lowercase level", cfg: &Config{Logger: Logger{Level: "warn"}}},
		{name: "unknown level", cfg: &Config{Logger: Logger{Level: "verbose"}}, wantErr: `unknown log level "verbose"`},
		{name: "bad pattern", cfg: &Config{Merge: Merge{Pattern: "[*.sarif"}}, wantErr: "invalid pattern"},
		{name: "output with directory", cfg: &Config{Merge: Merge{Output: "out/merged.sarif"}}, wantErr: "must be a file name"},
		{name: "output dot dot", cfg: &Config{Merge: Merge{Output: ".."}}, wantErr: "must be a file name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(tc.cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, "fallback", SetThen("", "fallback"))
	assert.Equal(t, "value", SetThen("value", "fallback"))
	assert.Equal(t, 3, SetThen(0, 3))
}
