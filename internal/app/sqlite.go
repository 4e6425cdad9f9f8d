package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adanyl0v/go-task-cards/internal/config"
	"github.com/adanyl0v/go-task-cards/internal/services"
)

var globalSQLiteDB *gorm.DB

func MustOpenSQLite() {
	path := config.Global().Store.SQLitePath

	err := ensureDirForSQLite(path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to prepare sqlite dir")
		panic(err)
	}

	dbLogger := logger.New(
		gormWriter{logger: component("gorm")},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	globalSQLiteDB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to open sqlite")
		panic(err)
	}

	err = services.MigrateSQLite(globalSQLiteDB)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate sqlite")
		panic(err)
	}
	globalLogger.Info().
		Str("path", path).
		Msg("opened sqlite")
}

func CloseSQLite() {
	sqlDB, err := globalSQLiteDB.DB()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to get sqlite handle")
		return
	}

	err = sqlDB.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite")
		return
	}
	globalLogger.Info().Msg("closed sqlite")
}

// ensureDirForSQLite creates the parent dir of a file DSN.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// gormWriter routes gorm's printf-style logs into zerolog.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.logger.Warn().Msgf(format, args...)
}
