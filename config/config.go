// Package config loads the game settings from file, .env and environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/cee-lo/domain/dice"
)

// Dice source kinds.
const (
	SourceMath  = "math"
	SourceKyber = "kyber"
)

// Config keys, shared with the command line flags.
const (
	KeySource     = "source"
	KeySeed       = "seed"
	KeyLogLevel   = "log_level"
	KeyPlayerName = "player_name"
	KeyRounds     = "rounds"
	KeyWorkers    = "workers"
)

const envPrefix = "CEELO"

type Config struct {
	Source     string `mapstructure:"source"`
	Seed       int64  `mapstructure:"seed"`
	LogLevel   string `mapstructure:"log_level"`
	PlayerName string `mapstructure:"player_name"`
	Rounds     int    `mapstructure:"rounds"`
	Workers    int    `mapstructure:"workers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySource, SourceMath)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPlayerName, "You")
	v.SetDefault(KeyRounds, 1000)
	v.SetDefault(KeyWorkers, 4)
}

// Load resolves the configuration from, lowest priority first: defaults, the
// config file, the .env file and CEELO_* environment variables. Flags bound
// to v before the call win over all of them.
//
// With an empty configFile, ceelo.yaml is looked up in the working directory
// and is optional. A missing envFile is ignored.
func Load(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("ceelo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceMath, SourceKyber:
	default:
		return fmt.Errorf("unknown dice source %q (want %s or %s)", c.Source, SourceMath, SourceKyber)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// NewSource builds the dice source selected by the configuration.
func (c *Config) NewSource() (dice.Source, error) {
	switch c.Source {
	case SourceMath:
		return dice.NewMathSource(c.Seed), nil
	case SourceKyber:
		return dice.NewKyberSource(c.Seed), nil
	}
	return nil, fmt.Errorf("unknown dice source %q", c.Source)
}
