package app

import (
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-cards/internal/config"
)

// MustLoadEnvFile loads variables from an explicit env file on top of the
// ones autoload already took from ./.env.
func MustLoadEnvFile(path string) {
	if path == "" {
		return
	}

	err := godotenv.Overload(path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to load env file")
		panic(err)
	}
	globalLogger.Info().
		Str("path", path).
		Msg("loaded env file")
}

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	config.SetGlobal(cfg)
}
