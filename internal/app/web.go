package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-cards/internal/backend"
	"github.com/adanyl0v/go-task-cards/internal/config"
	"github.com/adanyl0v/go-task-cards/internal/controller"
	"github.com/adanyl0v/go-task-cards/internal/delivery/web"
)

// MustListenAndServeWeb runs the task list page against the configured store.
func MustListenAndServeWeb() {
	cfg := config.Global()

	client, err := backend.NewClient(
		component("backend"),
		cfg.Backend.BaseURL,
		&http.Client{Timeout: cfg.Backend.RequestTimeout},
	)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("base_url", cfg.Backend.BaseURL).
			Msg("failed to create backend client")
		panic(err)
	}

	tasks := controller.New(component("controller"), client, controller.Options{
		Thumbnail:       cfg.Tasks.Thumbnail,
		CreatedAtLayout: cfg.Tasks.CreatedAtLayout,
		RequestTimeout:  cfg.Backend.RequestTimeout,
	})

	ctx, cancel := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		tasks.Run(ctx)
	}()
	defer func() {
		tasks.Wait()
		cancel()
		<-loopDone
		globalLogger.Info().Msg("stopped task list")
	}()

	err = tasks.Load(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to start loading tasks")
		panic(err)
	}

	router := newRouter()
	router.Use(gin.Logger())
	web.RegisterRoutes(router, web.New(component("web"), tasks))

	mustListenAndServeHTTP("web", cfg.HTTP.Port, router)
}
