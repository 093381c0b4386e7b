// Package config loads service configuration from defaults, an optional
// YAML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Business identifies the shop receiving WhatsApp orders.
type Business struct {
	Name           string `yaml:"name"`
	WhatsAppNumber string `yaml:"whatsapp_number"` // country code, no plus
	Currency       string `yaml:"currency"`
}

// Config is the full service configuration.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	// APIBaseURL points at a future real backend. The mocked data paths
	// ignore it; it is carried so deployments can set it ahead of time.
	APIBaseURL  string   `yaml:"api_base_url"`
	DataDir     string   `yaml:"data_dir"`
	MockDelayMS int      `yaml:"mock_delay_ms"`
	Business    Business `yaml:"business"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		DataDir:     "./data",
		MockDelayMS: 300,
		Business: Business{
			Name:           "Blackberry Cakes",
			WhatsAppNumber: "9779867403894",
			Currency:       "Rs",
		},
	}
}

// Load reads configuration. path may be empty or point at a YAML file; env
// vars override both defaults and file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WHATSAPP_NUMBER"); v != "" {
		cfg.Business.WhatsAppNumber = v
	}
	if v := os.Getenv("MOCK_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.MockDelayMS = ms
		}
	}

	return cfg, nil
}

// MockDelay returns the simulated data-access latency as a duration.
func (c Config) MockDelay() time.Duration {
	return time.Duration(c.MockDelayMS) * time.Millisecond
}
