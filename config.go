package ptlang

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Format selects how a parsed program is rendered.
type Format string

const (
	// FormatText is the indented text dump used for golden comparisons.
	FormatText Format = "text"
	// FormatJSON is a type-tagged JSON tree.
	FormatJSON Format = "json"
	// FormatYAML is the same tree as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", name)
	}
}

// ConfigEnv names the environment variable that points at a config file.
const ConfigEnv = "PTLANG_CONFIG"

// Config holds options for parsing and rendering programs.
type Config struct {
	// Format is the output format of Program.Encode in the CLI
	// (default: text).
	Format Format `toml:"format"`

	// Filename is attached to positions in error messages when the
	// source does not come from a named file.
	Filename string `toml:"filename"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFromEnv loads the file named by PTLANG_CONFIG, or returns the
// defaults when the variable is unset.
func LoadConfigFromEnv() (*Config, error) {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate reports whether the configuration holds a known format.
func (c *Config) Validate() error {
	_, err := ParseFormat(string(c.Format))
	return err
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatText
	}
}
