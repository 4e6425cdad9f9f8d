package services

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

type memoryTaskService struct {
	logger zerolog.Logger

	mu    sync.RWMutex
	tasks []models.Task
}

// NewMemoryTaskService keeps tasks in insertion order for the lifetime
// of the process.
func NewMemoryTaskService(logger zerolog.Logger) TaskService {
	return &memoryTaskService{logger: logger}
}

func (s *memoryTaskService) ListTasks(_ context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.logger.Debug().
		Int("count", len(s.tasks)).
		Msg("selected tasks")
	return append([]models.Task{}, s.tasks...), nil
}

func (s *memoryTaskService) CreateTask(_ context.Context, task models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		s.logger.Error().
			Int64("task_id", task.ID).
			Msg("task already exists")
		return nil, ErrTaskAlreadyExists
	}
	s.tasks = append(s.tasks, task)

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *memoryTaskService) UpdateTask(_ context.Context, task models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		s.logger.Error().
			Int64("task_id", task.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	s.tasks[i] = task

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return &task, nil
}

func (s *memoryTaskService) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Error().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *memoryTaskService) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}
