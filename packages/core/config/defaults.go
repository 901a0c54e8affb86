package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Target:   "",
		Database: "",
		Username: "neo4j",
		Output:   "console",
		Timeout:  "30s",
	}
}
