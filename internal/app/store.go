package app

import (
	"github.com/adanyl0v/go-task-cards/internal/config"
	"github.com/adanyl0v/go-task-cards/internal/services"
)

// MustOpenTaskService connects the configured store driver. The returned
// func releases whatever the driver holds.
func MustOpenTaskService() (services.TaskService, func()) {
	driver := config.Global().Store.Driver
	logger := component("store")

	globalLogger.Info().
		Str("driver", driver).
		Msg("opening task store")

	switch driver {
	case config.StoreDriverPostgres:
		MustConnectPostgres()
		return services.NewTaskService(logger, globalPostgresPool), DisconnectPostgres
	case config.StoreDriverSQLite:
		MustOpenSQLite()
		return services.NewSQLiteTaskService(logger, globalSQLiteDB), CloseSQLite
	default:
		return services.NewMemoryTaskService(logger), func() {}
	}
}
