// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package config loads application configuration using Koanf v2 with layered
// sources (highest priority wins):
//
//  1. Environment variables (prefix KBHUB_, e.g. KBHUB_ENGINE_TRENDING_LIMIT)
//  2. Optional YAML config file (config.yaml, or KBHUB_CONFIG_PATH)
//  3. Built-in defaults
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/validation"
)

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "KBHUB_CONFIG_PATH"

// envPrefix namespaces all environment variables read by this package.
const envPrefix = "KBHUB_"

// DefaultConfigPaths lists where config files are searched, in order. The
// first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kbhub/config.yaml",
	"/etc/kbhub/config.yml",
}

// Config is the root application configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Engine  EngineConfig  `koanf:"engine"`
	Catalog CatalogConfig `koanf:"catalog"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// EngineConfig carries knowledge base tunables.
type EngineConfig struct {
	// RecommendLimit is the maximum number of personalized
	// recommendations returned.
	RecommendLimit int `koanf:"recommend_limit" validate:"min=1,max=100"`

	// TrendingLimit is the default number of trending products returned.
	TrendingLimit int `koanf:"trending_limit" validate:"min=1,max=100"`

	// SearchCacheSize is the capacity of the search-result cache.
	// Zero disables caching.
	SearchCacheSize int `koanf:"search_cache_size" validate:"min=0,max=100000"`

	// SearchCacheTTL bounds how long a cached search result may be served.
	SearchCacheTTL time.Duration `koanf:"search_cache_ttl"`
}

// CatalogConfig locates the external catalog snapshot used by the CLI.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Engine: EngineConfig{
			RecommendLimit:  5,
			TrendingLimit:   5,
			SearchCacheSize: 512,
			SearchCacheTTL:  5 * time.Minute,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// KBHUB_ENGINE_TRENDING_LIMIT -> engine.trending_limit
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := validation.ValidateStruct(c.Engine); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	return nil
}

// envTransform maps an environment variable name to a koanf path. The
// section name is the first underscore-delimited token after the prefix.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
