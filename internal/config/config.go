// Package config loads server configuration and the seed catalog from YAML
// or JSON files, falling back to built-in defaults when no file exists.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/canopy/pkg/domain"
)

// Config is the server configuration file structure.
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Redis   RedisConfig   `yaml:"redis" json:"redis"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Catalog string        `yaml:"catalog" json:"catalog"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address        string `yaml:"address" json:"address"`
	MetricsAddress string `yaml:"metrics_address" json:"metrics_address"`
}

// RedisConfig configures the optional Redis store backend. An empty address
// means the in-memory store is used.
type RedisConfig struct {
	Address  string `yaml:"address" json:"address"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
}

// LoggingConfig configures log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:        ":3000",
			MetricsAddress: ":2112",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a configuration file (YAML or JSON by extension). A missing
// file yields the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := unmarshalByExt(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// catalogFile is the structure of the seed catalog file.
type catalogFile struct {
	Products []domain.Product `yaml:"products" json:"products"`
}

// LoadCatalog reads the seed catalog (YAML or JSON by extension). A missing
// or empty path yields the built-in sample catalog.
func LoadCatalog(path string) ([]domain.Product, error) {
	if path == "" {
		return DefaultProducts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProducts(), nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cat catalogFile
	if err := unmarshalByExt(path, data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if len(cat.Products) == 0 {
		return nil, fmt.Errorf("catalog %s defines no products", path)
	}
	return cat.Products, nil
}

func unmarshalByExt(path string, data []byte, v any) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// DefaultProducts is the sample catalog seeded when no catalog file exists.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod_1",
			Name:        "Ergo Chair 2",
			Price:       "$499",
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
			Description: "Ergonomic and stylish office chair",
			InStock:     true,
			Category:    "furniture",
		},
		{
			ID:          "prod_2",
			Name:        "Standing Desk Pro",
			Price:       "$899",
			Image:       "https://images.unsplash.com/photo-1595515106969-c9d1c8e5d640?w=400",
			Description: "Electric adjustable standing desk",
			InStock:     false,
			Category:    "furniture",
		},
		{
			ID:          "prod_3",
			Name:        "Wireless Headphones",
			Price:       "$299",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Description: "High-fidelity, noise-canceling headphones",
			InStock:     true,
			Category:    "electronics",
		},
	}
}
