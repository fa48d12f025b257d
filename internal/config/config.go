// Package config loads the jalali command configuration from defaults, an
// optional config file, JALALI_ environment variables, and command flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override configuration
// keys. The key "batch.parallel" maps to JALALI_BATCH_PARALLEL.
const EnvPrefix = "JALALI"

// ErrConfig wraps configuration errors.
var ErrConfig = errors.New("config")

// Config holds all configuration for the jalali command.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Convert ConvertConfig `mapstructure:"convert"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BatchConfig holds batch conversion configuration.
type BatchConfig struct {
	Parallel int  `mapstructure:"parallel"`
	Silent   bool `mapstructure:"silent"`
}

// ConvertConfig holds conversion configuration.
type ConvertConfig struct {
	EndOfDay bool `mapstructure:"end_of_day"`
}

// New returns a viper instance with the defaults set and environment
// variables bound. Bind command flags to it, then call [Load].
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Batch defaults
	v.SetDefault("batch.parallel", 1)
	v.SetDefault("batch.silent", false)

	// Conversion defaults
	v.SetDefault("convert.end_of_day", false)
}

// Load reads file, if not empty, into v and returns the resulting
// configuration. The file type is determined by its extension.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read %v: %w", ErrConfig, file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %w", ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if cfg contains invalid values.
func (cfg *Config) Validate() error {
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf(
			"%w: log format must be console or json but is %q",
			ErrConfig, cfg.Log.Format,
		)
	}

	if cfg.Batch.Parallel < 1 {
		return fmt.Errorf(
			"%w: batch parallelism must be at least 1 but is %d",
			ErrConfig, cfg.Batch.Parallel,
		)
	}

	return nil
}
