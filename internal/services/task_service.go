package services

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

// PostgresSchema creates the tasks table if it is missing.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    id          BIGINT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL,
    thumbnail   TEXT NOT NULL,
    created_at  TEXT NOT NULL
)
`

type taskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       name,
       description,
       thumbnail,
       created_at
FROM tasks
ORDER BY id
`
	rows, err := s.pgPool.Query(ctx, selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		err = rows.Scan(
			&task.ID,
			&task.Name,
			&task.Description,
			&task.Thumbnail,
			&task.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   name,
                   description,
                   thumbnail,
                   created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Name,
		task.Description,
		task.Thumbnail,
		task.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
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

func (s *taskServiceImpl) UpdateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	const updateTaskQuery = `
UPDATE tasks
SET name = $1,
    description = $2,
    thumbnail = $3,
    created_at = $4
WHERE id = $5
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		task.Name,
		task.Description,
		task.Thumbnail,
		task.CreatedAt,
		task.ID,
	).Scan(&task.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return &task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.pgPool.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
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
