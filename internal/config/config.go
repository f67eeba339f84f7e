package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the top-level YAML configuration of sarifmerge.
type Config struct {
	Logger Logger `yaml:"logger"`
	Merge  Merge  `yaml:"merge"`
}

// Logger holds logging settings.
type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Merge holds defaults for the merge command. Command line flags take precedence.
type Merge struct {
	Pattern     string `yaml:"pattern"`
	Output      string `yaml:"output"`
	StripPrefix string `yaml:"strip_prefix"`
	AutoStrip   bool   `yaml:"auto_strip"`
}

// ValidateConfigPath checks that path points to an existing regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return fmt.Errorf("failed to decode %q: %w", configPath, err)
	}

	return nil
}

// LoadConfig reads the configuration file. When required is false a missing
// file yields the default configuration instead of an error.
func LoadConfig(configPath string, required bool) (*Config, error) {
	cfg := &Config{}

	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) && !required {
		return cfg, nil
	}

	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
