package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for anyval
type Config struct {
	Decode   DecodeConfig   `yaml:"decode"`
	Output   OutputConfig   `yaml:"output"`
	Describe DescribeConfig `yaml:"describe"`
}

// DecodeConfig controls document decoding
type DecodeConfig struct {
	// MaxDepth bounds decode recursion on untrusted documents.
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig controls re-encoded output
type OutputConfig struct {
	Indent bool `yaml:"indent"`
}

// DescribeConfig controls the Go type sketch output
type DescribeConfig struct {
	Package  string `yaml:"package"`
	RootName string `yaml:"root_name"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Decode: DecodeConfig{
			MaxDepth: 512,
		},
		Output: OutputConfig{
			Indent: true,
		},
		Describe: DescribeConfig{
			Package:  "main",
			RootName: "Document",
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// anything the file leaves unset
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file '%s' not found", path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if c.Decode.MaxDepth <= 0 {
		return fmt.Errorf("decode.max_depth must be positive, got %d", c.Decode.MaxDepth)
	}
	if c.Describe.Package == "" {
		return fmt.Errorf("describe.package must not be empty")
	}
	return nil
}

// configFileNames are searched in order in each candidate directory
var configFileNames = []string{".anyval.yaml", ".anyval.yml", "anyval.yaml"}

// FindConfigFile looks for a config file in the current directory, then the
// user's home directory. Returns an empty string if none exists.
func FindConfigFile() string {
	if cwd, err := os.Getwd(); err == nil {
		for _, name := range configFileNames {
			candidate := filepath.Join(cwd, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range configFileNames {
			candidate := filepath.Join(home, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}

// LoadConfigFromDefaultLocations loads the first config file found, or the
// defaults when there is none.
func LoadConfigFromDefaultLocations() (*Config, error) {
	path := FindConfigFile()
	if path == "" {
		return NewConfig(), nil
	}
	return LoadConfig(path)
}
