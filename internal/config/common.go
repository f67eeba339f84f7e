package config

import (
	"os"
)

const (
	DefaultConfigFile = "sarifmerge.yml"
	DefaultPattern    = "*.sarif"
	DefaultOutput     = "merged_results.sarif"

	EnvConfigFile = "SARIFMERGE_CONFIG"
	EnvLogLevel   = "SARIFMERGE_LOG_LEVEL"
)

// ConfigPath picks the configuration file to read and reports whether it was
// requested explicitly (flag or environment) rather than being the default.
func ConfigPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return env, true
	}
	return DefaultConfigFile, false
}

// GetMergePattern returns the configured discovery pattern or the default one.
func GetMergePattern(cfg *Config) string {
	if cfg == nil {
		return DefaultPattern
	}
	return SetThen(cfg.Merge.Pattern, DefaultPattern)
}

// GetMergeOutput returns the configured output file name or the default one.
func GetMergeOutput(cfg *Config) string {
	if cfg == nil {
		return DefaultOutput
	}
	return SetThen(cfg.Merge.Output, DefaultOutput)
}
