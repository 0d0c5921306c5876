// Package config loads and persists the mmscan configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete mmscan configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Scan    ScanConfig    `json:"scan" mapstructure:"scan"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string     `json:"host" mapstructure:"host"`
	Port string     `json:"port" mapstructure:"port"`
	Auth AuthConfig `json:"auth" mapstructure:"auth"`
}

// AuthConfig contains API token authentication settings. TokenHash is the
// bcrypt hash printed by `mmscan token new`; the raw token is never stored.
type AuthConfig struct {
	Enabled   bool   `json:"enabled" mapstructure:"enabled"`
	TokenHash string `json:"tokenHash" mapstructure:"tokenHash"`
}

// ScanConfig contains scan behavior configuration
type ScanConfig struct {
	// MaxUnitBytes caps the code size of a single unit; larger units are
	// rejected rather than scanned.
	MaxUnitBytes int `json:"maxUnitBytes" mapstructure:"maxUnitBytes"`

	// RulesPath points to an optional TOML rule overlay merged into the
	// builtin reference tables at startup.
	RulesPath string `json:"rulesPath" mapstructure:"rulesPath"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			Auth: AuthConfig{
				Enabled: false,
			},
		},
		Scan: ScanConfig{
			MaxUnitBytes: 2 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .mmscan/config.json under root,
// falling back to defaults when no config file exists.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("scan.maxUnitBytes", 2*1024*1024)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".mmscan"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .mmscan/config.json under root
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".mmscan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Scan.MaxUnitBytes < 0 {
		return &ConfigError{Field: "scan.maxUnitBytes", Message: "must not be negative"}
	}
	if c.Server.Auth.Enabled && c.Server.Auth.TokenHash == "" {
		return &ConfigError{Field: "server.auth.tokenHash", Message: "required when auth is enabled"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
