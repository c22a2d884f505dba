package appconf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for the server.
type Config struct {
	Port          int         `yaml:"port"`
	Env           Environment `yaml:"env"`
	ApiKeys       []string    `yaml:"api_keys"`
	ExemptApiKeys []string    `yaml:"exempt_api_keys"`
	// RateLimit is the number of requests per second allowed per API key.
	RateLimit int `yaml:"rate_limit"`
	// TableFile optionally replaces the built-in reference table.
	TableFile string `yaml:"table_file"`
}

// DefaultConfig returns the settings used when no flag or file overrides them.
func DefaultConfig() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
	}
}

// LoadFile reads a YAML config file over the given base config. Fields
// missing from the file keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail at runtime.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be non-negative")
	}
	return nil
}

// SplitKeys parses a comma separated key list, dropping blanks.
func SplitKeys(flagValue string) []string {
	if flagValue == "" {
		return nil
	}

	keys := make([]string, 0)
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
