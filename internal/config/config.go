// Package config loads the application configuration from the user's
// config directory with environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
}

// ServerConfig configures the REST API server
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	DatabasePath   string   `yaml:"database_path"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ClientConfig configures the TUI client
type ClientConfig struct {
	APIURL string `yaml:"api_url"`
}

// Load loads config from ~/.listo/config.yaml.
// Returns default config if the file doesn't exist. Environment variables
// LISTO_ADDR, LISTO_DB_PATH, LISTO_API_URL and LISTO_ALLOWED_ORIGINS
// override whatever the file says.
func Load() (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath()
	if err == nil {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	config.applyDefaults()
	config.applyEnv()
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":3000",
		},
		Client: ClientConfig{
			APIURL: "http://localhost:3000",
		},
	}
}

// applyDefaults fills in any values the config file left empty
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.DatabasePath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Server.DatabasePath = filepath.Join(home, ".listo", "todos.db")
		} else {
			c.Server.DatabasePath = "todos.db"
		}
	}
	if c.Client.APIURL == "" {
		c.Client.APIURL = "http://localhost:3000"
	}
}

// applyEnv applies environment variable overrides
func (c *Config) applyEnv() {
	if addr := os.Getenv("LISTO_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dbPath := os.Getenv("LISTO_DB_PATH"); dbPath != "" {
		c.Server.DatabasePath = dbPath
	}
	if apiURL := os.Getenv("LISTO_API_URL"); apiURL != "" {
		c.Client.APIURL = apiURL
	}
	if origins := os.Getenv("LISTO_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = nil
		for _, part := range strings.Split(origins, ",") {
			if part = strings.TrimSpace(part); part != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, part)
			}
		}
	}
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".listo", "config.yaml"), nil
}
