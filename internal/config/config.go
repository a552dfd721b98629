package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level application configuration.
type Config struct {
	App AppConfig `yaml:"app"`
}

// AppConfig configures corpus loading and text generation.
type AppConfig struct {
	DataDir        string `yaml:"data_dir"`         // directory holding the .txt corpus
	SampleLength   int    `yaml:"sample_length"`    // tokens per generated sample
	NumFileThreads int    `yaml:"num_file_threads"` // corpus loader worker count
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		App: AppConfig{
			DataDir:        "data",
			SampleLength:   50,
			NumFileThreads: 2,
			LogFile:        "markov.log",
			LogLevel:       "info",
		},
	}
}

// LoadConfig reads the YAML configuration at path. A missing file is not an
// error: defaults are returned so the tool works out of the box. Zero-valued
// fields in the file fall back to their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	defaults := Default()
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = defaults.App.DataDir
	}
	if cfg.App.SampleLength == 0 {
		cfg.App.SampleLength = defaults.App.SampleLength
	}
	if cfg.App.NumFileThreads == 0 {
		cfg.App.NumFileThreads = defaults.App.NumFileThreads
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = defaults.App.LogFile
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaults.App.LogLevel
	}

	return cfg, nil
}
