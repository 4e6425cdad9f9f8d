package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values cleanenv cannot check with tags alone.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}

	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverSQLite, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	if c.Backend.RequestTimeout <= 0 {
		return fmt.Errorf("backend request timeout must be positive")
	}
	return nil
}
