package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"":      {},
	"TRACE": {},
	"DEBUG": {},
	"INFO":  {},
	"WARN":  {},
	"ERROR": {},
}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateMergeConfig(&cfg.Merge); err != nil {
		return fmt.Errorf("YAML global config: merge directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks the logger level name.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	if _, ok := validLogLevels[strings.ToUpper(strings.TrimSpace(loggerConfig.Level))]; !ok {
		return fmt.Errorf("unknown log level %q", loggerConfig.Level)
	}
	return nil
}

// ValidateMergeConfig checks the merge defaults.
func ValidateMergeConfig(mergeConfig *Merge) error {
	if mergeConfig == nil {
		return fmt.Errorf("merge configuration is nil")
	}
	if err := ValidatePattern(mergeConfig.Pattern); err != nil {
		return err
	}
	if err := ValidateOutputName(mergeConfig.Output); err != nil {
		return err
	}
	return nil
}

// ValidatePattern checks that pattern is a well-formed filepath.Match pattern.
// An empty pattern is accepted and means the default one.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return nil
}

// ValidateOutputName checks that name is a bare file name.
// An empty name is accepted and means the default one.
func ValidateOutputName(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("output %q must be a file name without directories", name)
	}
	return nil
}
