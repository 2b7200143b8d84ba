package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultResultFile = "result.txt"
	DefaultModel      = "gemini-pro"
)

// Config holds the tool's settings. All fields are optional in the yaml file;
// missing ones fall back to the defaults.
type Config struct {
	// ResultFile is where the result document of the last solved expression
	// is written.
	ResultFile string `yaml:"result-file"`
	// CSVFile, when set, receives a CSV export of every solved table.
	CSVFile string `yaml:"csv-file"`
	// Model is the text-generation model asked for explanations.
	Model string `yaml:"model"`
	// Endpoint overrides the explanation service base URL. Empty means the
	// public Gemini API.
	Endpoint string `yaml:"endpoint"`

	// Path is where the config was read from, and where Write saves it.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ResultFile: DefaultResultFile,
		Model:      DefaultModel,
	}
}

// LoadConfig reads the yaml config at path. A missing file is reported
// through os.IsNotExist so callers can fall back to Default.
func LoadConfig(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	return config, nil
}

// Write persists the config to its Path.
func (c *Config) Write() error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, contents, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}

	return nil
}
