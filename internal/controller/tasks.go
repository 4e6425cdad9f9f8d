package controller

import (
	"context"

	"github.com/adanyl0v/go-task-cards/internal/dom"
	"github.com/adanyl0v/go-task-cards/internal/models"
)

// Load fetches the stored tasks. When the fetch succeeds the result replaces
// the in-memory list and a card is rendered per task, in order. A failure is
// logged and leaves the list as it was.
func (c *Controller) Load(ctx context.Context) error {
	return c.do(ctx, func() error {
		var fetched []models.Task
		c.goRemote(func(ctx context.Context) error {
			var err error
			fetched, err = c.remote.ListTasks(ctx)
			return err
		}, func(err error) {
			if err != nil {
				c.logger.Error().
					Err(err).
					Msg("could not fetch tasks")
				return
			}
			c.loadTasks(fetched)
		})
		return nil
	})
}

func (c *Controller) loadTasks(fetched []models.Task) {
	c.tasks = make([]*models.Task, 0, len(fetched))
	for i := range fetched {
		task := fetched[i]
		c.tasks = append(c.tasks, &task)
		c.lastID = max(c.lastID, task.ID)
		c.renderCard(&task)
	}
	c.logger.Info().
		Int("count", len(fetched)).
		Msg("loaded tasks")
}

// Create builds a task from the creation inputs, renders it and sends it to
// the store. Empty inputs raise an alert and return ErrEmptyField.
func (c *Controller) Create(ctx context.Context) error {
	return c.do(ctx, func() error {
		name, description := c.doc.Inputs()
		if name == "" || description == "" {
			c.doc.Alert(EmptyFieldAlert)
			return ErrEmptyField
		}

		now := c.opts.Now()
		task := &models.Task{
			ID:          c.nextID(now.UnixMilli()),
			Name:        name,
			Description: description,
			Thumbnail:   c.opts.Thumbnail,
			CreatedAt:   now.Format(c.opts.CreatedAtLayout),
		}
		c.tasks = append(c.tasks, task)
		c.renderCard(task)

		created := *task
		c.goRemote(func(ctx context.Context) error {
			err := c.remote.CreateTask(ctx, created)
			if err != nil {
				c.logger.Error().
					Err(err).
					Int64("task_id", created.ID).
					Msg("failed to save task")
				return err
			}
			c.logger.Info().
				Int64("task_id", created.ID).
				Msg("saved task")
			return nil
		}, nil)

		c.doc.ClearInputs()
		return nil
	})
}

// nextID keeps ids strictly increasing when the clock has not moved on.
func (c *Controller) nextID(millis int64) int64 {
	if millis <= c.lastID {
		millis = c.lastID + 1
	}
	c.lastID = millis
	return millis
}

func (c *Controller) renderCard(task *models.Task) {
	var card *dom.Card
	card = c.doc.AppendCard(dom.CardContent{
		Thumbnail:   task.Thumbnail,
		Name:        task.Name,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
	}, func() {
		c.openEditDialog(task, card)
	}, func() {
		c.deleteTask(task, card)
	})
}

func (c *Controller) deleteTask(task *models.Task, card *dom.Card) {
	c.doc.RemoveCard(card.Ref())
	c.removeTask(task)

	id := task.ID
	c.goRemote(func(ctx context.Context) error {
		err := c.remote.DeleteTask(ctx, id)
		if err != nil {
			c.logger.Error().
				Err(err).
				Int64("task_id", id).
				Msg("failed to delete task")
			return err
		}
		c.logger.Info().
			Int64("task_id", id).
			Msg("deleted task")
		return nil
	}, nil)
}

func (c *Controller) openEditDialog(task *models.Task, card *dom.Card) {
	if c.state == Editing {
		c.logger.Debug().
			Int64("task_id", task.ID).
			Msg("edit dialog already open")
		return
	}
	c.state = Editing

	var dialog *dom.Dialog
	dialog = c.doc.OpenDialog(card.Ref(), task.Name, task.Description, func() {
		c.closeEditDialog(dialog)
	}, func(name, description string) {
		c.updateTask(task, card, name, description)
		c.closeEditDialog(dialog)
	})
}

func (c *Controller) closeEditDialog(dialog *dom.Dialog) {
	c.state = Idle
	c.doc.RemoveDialog(dialog.Ref())
}

func (c *Controller) updateTask(task *models.Task, card *dom.Card, name, description string) {
	card.SetText(name, description)
	task.Name = name
	task.Description = description

	updated := *task
	c.goRemote(func(ctx context.Context) error {
		err := c.remote.UpdateTask(ctx, updated)
		if err != nil {
			c.logger.Error().
				Err(err).
				Int64("task_id", updated.ID).
				Msg("failed to update task")
			return err
		}
		c.logger.Info().
			Int64("task_id", updated.ID).
			Msg("updated task")
		return nil
	}, nil)
}
