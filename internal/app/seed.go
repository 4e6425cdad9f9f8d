package app

import (
	"context"
	"os"

	"github.com/adanyl0v/go-task-cards/internal/services"
)

// MustSeedStore loads the YAML fixture at path into the configured store.
func MustSeedStore(path string) {
	f, err := os.Open(path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to open seed file")
		panic(err)
	}
	defer f.Close()

	taskService, closeStore := MustOpenTaskService()
	defer closeStore()

	result, err := services.Seed(context.Background(), taskService, f)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to seed store")
		panic(err)
	}
	globalLogger.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Msg("seeded store")
}
