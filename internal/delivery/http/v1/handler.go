package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/services"
)

type Handler interface {
	HandleRequestID(c *gin.Context)
	HandleAccessLog(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the task routes at the root of router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestID, h.HandleAccessLog)

	tasksRouter := router.Group("/tasks")
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.POST("/", h.HandleCreateTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
