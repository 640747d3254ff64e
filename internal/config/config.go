// Package config loads server configuration from YAML with environment
// overrides. A missing file is not an error; defaults carry a usable server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"reelplan/internal/plan"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
	Limits  Limits        `yaml:"limits" validate:"required"`
	Paths   PathsConfig   `yaml:"paths"`
}

type ServerConfig struct {
	Port int `yaml:"port" validate:"required,min=1,max=65535"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
}

type PathsConfig struct {
	DataDir     string `yaml:"data_dir"`
	ToolCatalog string `yaml:"tool_catalog" validate:"omitempty,filepath"`
}

// Load reads the config file named by REELPLAN_CONFIG (default
// config.yaml), applies environment overrides, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("REELPLAN_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Limits:  DefaultLimits(),
		Paths:   PathsConfig{DataDir: "data"},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REELPLAN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("REELPLAN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("REELPLAN_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("REELPLAN_DATA_DIR"); v != "" {
		cfg.Paths.DataDir = v
	}
}

// ToolCatalog loads the catalog override named in the config, or the
// built-in SOTA catalog when none is configured.
func (c *Config) ToolCatalog() (plan.Catalog, error) {
	if c.Paths.ToolCatalog == "" {
		return plan.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(c.Paths.ToolCatalog)
	if err != nil {
		return plan.Catalog{}, fmt.Errorf("reading tool catalog: %w", err)
	}

	var catalog plan.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return plan.Catalog{}, fmt.Errorf("parsing tool catalog: %w", err)
	}
	if len(catalog.Recommendations) == 0 {
		return plan.Catalog{}, fmt.Errorf("tool catalog %s has no recommendations", c.Paths.ToolCatalog)
	}
	if catalog.VFX.Tool == "" {
		catalog.VFX = plan.DefaultCatalog().VFX
	}

	return catalog, nil
}
