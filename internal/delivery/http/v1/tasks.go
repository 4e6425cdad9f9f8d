package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-cards/internal/models"
	"github.com/adanyl0v/go-task-cards/internal/services"
)

type taskRequest struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	CreatedAt   string `json:"createdat"`
}

func (r taskRequest) task() models.Task {
	task := models.Task{
		Name:        r.Name,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		CreatedAt:   r.CreatedAt,
	}
	if r.ID != nil {
		task.ID = *r.ID
	}
	return task
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	if req.ID == nil {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, req.task())
	if err != nil {
		if errors.Is(err, services.ErrTaskAlreadyExists) {
			abort(c, newConflictError(services.ErrTaskAlreadyExists.Error()))
			return
		}
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task := req.task()
	task.ID = taskID

	updated, err := h.tasks.UpdateTask(c, task)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *handlerImpl) taskIDParam(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return taskID, true
}
