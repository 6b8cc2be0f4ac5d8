package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Output format: "text" or "ndjson"
	Format string `mapstructure:"format"`
	// What to do with a malformed line: "abort" or "skip"
	OnError    string `mapstructure:"on_error"`
	Verbose    bool   `mapstructure:"verbose"`
	Signatures bool   `mapstructure:"signatures"`
	// Longest accepted input line in bytes
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:       "text",
		OnError:      "abort",
		Verbose:      false,
		Signatures:   false,
		MaxLineBytes: 16 * 1024 * 1024,
	}
}

// Validate rejects values the CLI cannot act on
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "ndjson":
	default:
		return fmt.Errorf("invalid format %q (want text or ndjson)", c.Format)
	}
	switch c.OnError {
	case "abort", "skip":
	default:
		return fmt.Errorf("invalid on_error %q (want abort or skip)", c.OnError)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("invalid max_line_bytes %d (must be positive)", c.MaxLineBytes)
	}
	return nil
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.hdrift.yaml or ./.hdrift.yml
// 2. ~/.hdrift.yaml or ~/.hdrift.yml
// 3. $XDG_CONFIG_HOME/hdrift/config.yaml (or ~/.config/hdrift/config.yaml)
// 4. /etc/hdrift/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".hdrift.yaml", ".hdrift.yml", "hdrift.yaml", "hdrift.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "hdrift"))
	}
	searchPaths = append(searchPaths, "/etc/hdrift")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// config.yaml only counts inside a dedicated directory
		if filepath.Base(dir) == "hdrift" {
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HDRIFT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("HDRIFT_ON_ERROR"); v != "" {
		cfg.OnError = v
	}
	if v := os.Getenv("HDRIFT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("HDRIFT_SIGNATURES"); v == "true" || v == "1" {
		cfg.Signatures = true
	}
	if v := os.Getenv("HDRIFT_MAX_LINE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLineBytes = n
		}
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
