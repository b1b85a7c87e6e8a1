// Package config loads the server configuration from YAML
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Game    GameConfig    `yaml:"game"`
}

// ServerConfig configures the listeners and logging
type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	// HTTPPort serves health and debug endpoints; 0 disables it
	HTTPPort int    `yaml:"http_port"`
	LogLevel string `yaml:"log_level"`
}

// RedisConfig configures the Redis connection
type RedisConfig struct {
	// Addr is host:port or a redis:// URL
	Addr     string `yaml:"addr"`
	PoolSize int    `yaml:"pool_size"`
}

// PokeAPIConfig configures the data provider client
type PokeAPIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

// GameConfig tunes the rules engine
type GameConfig struct {
	DefaultWildSpecies string                `yaml:"default_wild_species"`
	TypeChartOverrides []engine.TypeOverride `yaml:"type_chart_overrides"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: 50051,
			HTTPPort: 8080,
			LogLevel: "info",
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 10,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:     "https://pokeapi.co/api/v2/",
			HTTPTimeout: 10 * time.Second,
			CacheTTL:    24 * time.Hour,
		},
		Game: GameConfig{
			DefaultWildSpecies: "pidgey",
		},
	}
}

// Load reads path and merges it over Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the type chart overrides
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.http_port", c.Server.HTTPPort, 0, 65535, vb)
	errors.ValidateEnum("server.log_level", c.Server.LogLevel, logLevels, vb)
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	errors.ValidateMin("redis.pool_size", c.Redis.PoolSize, 1, vb)
	errors.ValidateRequired("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.HTTPTimeout <= 0 {
		vb.Field("pokeapi.http_timeout", "must be positive")
	}
	if c.PokeAPI.CacheTTL <= 0 {
		vb.Field("pokeapi.cache_ttl", "must be positive")
	}
	errors.ValidateRequired("game.default_wild_species", c.Game.DefaultWildSpecies, vb)

	if err := vb.Build(); err != nil {
		return err
	}

	if _, err := c.TypeChart(); err != nil {
		return err
	}
	return nil
}

// TypeChart builds the effectiveness table with the configured overrides
func (c *Config) TypeChart() (*engine.TypeChart, error) {
	chart, err := engine.NewTypeChart(c.Game.TypeChartOverrides)
	if err != nil {
		return nil, errors.Wrap(err, "invalid game.type_chart_overrides")
	}
	return chart, nil
}
