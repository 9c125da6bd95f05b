// Package config holds the disassembly service configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultListen is the default listen address of the HTTP server.
const DefaultListen = "127.0.0.1:9999"

// Config is the disassembly service configuration.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`
	// Debug enables verbose request logging.
	Debug bool `yaml:"debug"`
	// DefaultSyntax is applied to x86 requests that do not select a
	// syntax. Empty keeps the adapter default.
	DefaultSyntax string `yaml:"default_syntax"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Listen: DefaultListen}
}

// Load reads a YAML configuration file. Missing fields keep their
// defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return conf, nil
}
