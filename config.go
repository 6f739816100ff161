package qsim

import (
	"fmt"

	"github.com/spf13/viper"
)

/*
Config controls a Register. Tolerance is used when comparing its state
against another vector. Seed selects a deterministic Sampler, and 0 selects
the process-wide generator. LogLevel sets the package logger's level.
*/
type Config struct {
	Tolerance float64
	Seed      uint64
	LogLevel  string
}

func NewConfig() *Config {
	return &Config{
		Tolerance: DefaultEpsilon,
		LogLevel:  "warn",
	}
}

/*
LoadConfig reads a Config from the file at path (any format viper
understands, selected by extension) with QSIM_TOLERANCE, QSIM_SEED and
QSIM_LOGLEVEL overriding it. An empty path reads the environment only.
Missing keys keep their NewConfig defaults.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("loglevel", defaults.LogLevel)
	v.SetEnvPrefix("qsim")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("LoadConfig: %w", err)
		}
	}

	cfg := &Config{
		Tolerance: v.GetFloat64("tolerance"),
		Seed:      v.GetUint64("seed"),
		LogLevel:  v.GetString("loglevel"),
	}

	if cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("LoadConfig: tolerance must be positive, got %g", cfg.Tolerance)
	}

	return cfg, nil
}

// sampler returns the Sampler selected by Seed.
func (cfg *Config) sampler() Sampler {
	if cfg.Seed == 0 {
		return DefaultSampler()
	}
	return NewSeededSampler(cfg.Seed)
}
