package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/graphspec/packages/core/env"
)

// Config represents the graphspec configuration
type Config struct {
	Target   string `yaml:"target,omitempty"`
	Database string `yaml:"database,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	Output      string  `yaml:"output,omitempty"`
	Timeout     string  `yaml:"timeout,omitempty"`
	Repeat      int     `yaml:"repeat,omitempty"`
	Rate        float64 `yaml:"rate,omitempty"`
	Tag         string  `yaml:"tag,omitempty"`
	Bail        *bool   `yaml:"bail,omitempty"`
	Verbose     *bool   `yaml:"verbose,omitempty"`
	NoColor     *bool   `yaml:"noColor,omitempty"`
	History     *bool   `yaml:"history,omitempty"`
	HistoryFile string  `yaml:"historyFile,omitempty"`
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetBail returns the bail setting, defaulting to false
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetHistory returns the history setting, defaulting to true
func (c *Config) GetHistory() bool {
	return getBool(c.History, true)
}

// GetTimeout parses the timeout setting.
func (c *Config) GetTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".graphspec.yaml",
	".graphspec.yml",
	"graphspec.yaml",
	"graphspec.yml",
}

// LoadConfig loads configuration from the specified path or searches for
// config files in the current directory.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// No config file found
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	// Credentials and targets may reference environment variables
	config.Target = env.Expand(config.Target)
	config.Username = env.Expand(config.Username)
	config.Password = env.Expand(config.Password)

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.Target != "" {
		result.Target = other.Target
	}
	if other.Database != "" {
		result.Database = other.Database
	}
	if other.Username != "" {
		result.Username = other.Username
	}
	if other.Password != "" {
		result.Password = other.Password
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.Timeout != "" {
		result.Timeout = other.Timeout
	}
	if other.Repeat > 0 {
		result.Repeat = other.Repeat
	}
	if other.Rate > 0 {
		result.Rate = other.Rate
	}
	if other.Tag != "" {
		result.Tag = other.Tag
	}
	if other.HistoryFile != "" {
		result.HistoryFile = other.HistoryFile
	}

	// Boolean flags only override when explicitly set
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.History != nil {
		result.History = other.History
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
