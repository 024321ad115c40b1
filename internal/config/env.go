// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

// EvalEnvConfig holds the defaults an evaluation run uses when the
// caller does not override them on the command line.
type EvalEnvConfig struct {
	// Priors are the target priors DCF is evaluated at, ascending.
	Priors []float64 `env:"EVAL_PRIORS" envDefault:"0.01,0.5"`
	// Normalize divides DCF by the cost of the better trivial strategy.
	Normalize bool `env:"EVAL_NORMALIZE" envDefault:"true"`
	// Workers caps the batch evaluation pool; 0 means GOMAXPROCS.
	Workers int `env:"EVAL_WORKERS" envDefault:"0"`
}

func LoadEvalEnv() (*EvalEnvConfig, error) {
	cfg := &EvalEnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
