package app

import (
	"github.com/adanyl0v/go-task-cards/internal/config"
	v1 "github.com/adanyl0v/go-task-cards/internal/delivery/http/v1"
)

// MustListenAndServeStore runs the REST task store.
func MustListenAndServeStore() {
	taskService, closeStore := MustOpenTaskService()
	defer closeStore()

	router := newRouter()
	v1.RegisterRoutes(router, v1.New(component("api"), taskService))

	mustListenAndServeHTTP("store", config.Global().Store.Port, router)
}
