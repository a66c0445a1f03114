package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full CLI configuration. Every field is loadable from a
// BICROSS_* environment variable and overridable by a flag.
type Config struct {
	GridSize int    `envconfig:"GRID_SIZE" default:"33"`
	Iters    int    `envconfig:"ITERS" default:"6"`
	Prec     uint   `envconfig:"PREC" default:"512"`
	Workers  int    `envconfig:"WORKERS" default:"1"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// loadConfig reads the environment into a Config.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("bicross", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
