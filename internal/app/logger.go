package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/config"
)

var globalLogger zerolog.Logger

var envLevels = map[string]zerolog.Level{
	config.EnvDev:   zerolog.DebugLevel,
	config.EnvProd:  zerolog.InfoLevel,
	config.EnvLocal: zerolog.TraceLevel,
}

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", "taskcards").
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

// MustInitApplicationLogger re-levels the logger for the configured env.
// Local runs get a human readable console writer.
func MustInitApplicationLogger() {
	cfg := config.Global()

	level, ok := envLevels[cfg.Env]
	if !ok {
		globalLogger.Error().
			Str("env", cfg.Env).
			Msg("unknown env")
		panic(fmt.Errorf("unknown env: %s", cfg.Env))
	}
	zerolog.SetGlobalLevel(level)

	w := io.Writer(os.Stdout)
	if cfg.Env == config.EnvLocal {
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		w = consoleWriter
	}

	globalLogger = globalLogger.Output(w)
	globalLogger.Info().
		Str("level", level.String()).
		Msg("initialized application logger")
}

// component returns the application logger tagged with a component name.
func component(name string) zerolog.Logger {
	return globalLogger.With().Str("component", name).Logger()
}
