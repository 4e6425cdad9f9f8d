package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskAlreadyExists = errors.New("task already exists")
)

// TaskService is the persistent side of the task list. Tasks are keyed by
// the id the client assigned; the store never makes up ids of its own.
type TaskService interface {
	// ListTasks returns every stored task, oldest first. It returns an
	// empty slice, not an error, when there are none.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask stores the task as given.
	//
	// It returns ErrTaskAlreadyExists if a task with the same id is stored.
	CreateTask(ctx context.Context, task models.Task) (*models.Task, error)

	// UpdateTask replaces the stored task with the same id.
	//
	// It returns ErrTaskNotFound if there is no such task.
	UpdateTask(ctx context.Context, task models.Task) (*models.Task, error)

	// DeleteTask removes the task with the given id.
	//
	// It returns ErrTaskNotFound if there is no such task.
	DeleteTask(ctx context.Context, id int64) error
}
