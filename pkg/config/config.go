package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied after the file and the environment have been read.
const (
	DefaultListenAddr = "0.0.0.0"
	DefaultListenPort = 3490
	DefaultStorePath  = "store.txt"
	DefaultLogLevel   = "info"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	ListenPort int    `yaml:"listen_port"`
	StorePath  string `yaml:"store_path"`
	AdminAddr  string `yaml:"admin_addr"`
	LogLevel   string `yaml:"log_level"`
}

// LoadConfig loads configuration from a YAML file if path is provided,
// otherwise it falls back to environment variables. Unset fields receive
// defaults; an empty AdminAddr disables the admin HTTP surface.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	// If path is provided and file exists, load from YAML
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			// If path was explicitly provided but file doesn't exist, return error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		// Apply environment variable overrides
		if err := applyEnvOverrides(&cfg); err != nil {
			return nil, err
		}
		applyDefaults(&cfg)
		return &cfg, nil
	}

	// Load from environment variables
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ListenAddr, strconv.Itoa(c.ListenPort))
}

// applyEnvOverrides allows environment variables to override YAML config values
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("KV_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("KV_LISTEN_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid KV_LISTEN_PORT value: %w", err)
		}
		cfg.ListenPort = port
	}
	if v := os.Getenv("KV_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("KV_ADMIN_ADDR"); v != "" {
		cfg.AdminAddr = v
	}
	if v := os.Getenv("KV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = DefaultListenPort
	}
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
