package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-cards/internal/config"
)

func newRouter() *gin.Engine {
	if config.Global().Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	return router
}

// mustListenAndServeHTTP serves handler until SIGINT or SIGTERM and then
// shuts the server down gracefully.
func mustListenAndServeHTTP(name, port string, handler http.Handler) {
	httpCfg := config.Global().HTTP

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		globalLogger.Info().
			Str("server", name).
			Str("host", httpCfg.Host).
			Str("port", port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Str("server", name).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully shut down
	// the server within the configured timeout.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Str("server", name).
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("server", name).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().
		Str("server", name).
		Msg("shut down http server")
}
