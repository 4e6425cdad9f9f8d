package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

type taskRecord struct {
	ID          int64 `gorm:"primaryKey;autoIncrement:false"`
	Name        string
	Description string
	Thumbnail   string
	CreatedAt   string `gorm:"column:created_at;autoCreateTime:false"`
}

func (taskRecord) TableName() string {
	return "tasks"
}

func newTaskRecord(task models.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Thumbnail:   task.Thumbnail,
		CreatedAt:   task.CreatedAt,
	}
}

func (r taskRecord) task() models.Task {
	return models.Task{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		CreatedAt:   r.CreatedAt,
	}
}

// MigrateSQLite creates or updates the tasks table.
func MigrateSQLite(db *gorm.DB) error {
	return db.AutoMigrate(&taskRecord{})
}

type sqliteTaskService struct {
	logger zerolog.Logger
	db     *gorm.DB
}

// NewSQLiteTaskService expects db to be opened with TranslateError so that
// duplicate ids surface as gorm.ErrDuplicatedKey.
func NewSQLiteTaskService(logger zerolog.Logger, db *gorm.DB) TaskService {
	return &sqliteTaskService{
		logger: logger,
		db:     db,
	}
}

func (s *sqliteTaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	var records []taskRecord
	err := s.db.WithContext(ctx).Order("id").Find(&records).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.task())
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *sqliteTaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	record := newTaskRecord(task)
	err := s.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task already exists")
			return nil, ErrTaskAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *sqliteTaskService) UpdateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	record := newTaskRecord(task)
	result := s.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"name":        record.Name,
			"description": record.Description,
			"thumbnail":   record.Thumbnail,
			"created_at":  record.CreatedAt,
		})
	if result.Error != nil {
		s.logger.Error().
			Err(result.Error).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		s.logger.Error().
			Int64("task_id", task.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return &task, nil
}

func (s *sqliteTaskService) DeleteTask(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&taskRecord{}, id)
	if result.Error != nil {
		s.logger.Error().
			Err(result.Error).
			Int64("task_id", id).
			Msg("failed to delete task")
		return result.Error
	}
	if result.RowsAffected == 0 {
		s.logger.Error().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}
