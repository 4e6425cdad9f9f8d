// Package controller keeps the task list, its document and the remote store
// in step.
//
// Every operation runs on a single loop goroutine started by Run. Calls to
// the remote store are fire-and-forget: they run on their own goroutines,
// failures are logged, and local state is never rolled back.
package controller

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/dom"
	"github.com/adanyl0v/go-task-cards/internal/models"
)

var (
	ErrEmptyField = errors.New("name and description must not be empty")
	ErrStopped    = errors.New("controller stopped")
)

// EmptyFieldAlert is shown when a task is submitted without a name or description.
const EmptyFieldAlert = "Description and Name field must not be empty!"

// Remote is the REST store the list is mirrored to.
type Remote interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) error
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

type Options struct {
	Thumbnail       string
	CreatedAtLayout string
	RequestTimeout  time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type Controller struct {
	logger zerolog.Logger
	remote Remote
	opts   Options

	doc    *dom.Document
	tasks  []*models.Task
	state  EditState
	lastID int64

	actions  chan func()
	stopped  chan struct{}
	running  sync.Once
	inflight inflight
}

func New(logger zerolog.Logger, remote Remote, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	return &Controller{
		logger:  logger,
		remote:  remote,
		opts:    opts,
		doc:     dom.New(),
		state:   Idle,
		actions: make(chan func()),
		stopped: make(chan struct{}),
	}
}

// Run processes operations until ctx is done. It must be called exactly once.
func (c *Controller) Run(ctx context.Context) {
	c.running.Do(func() {
		defer close(c.stopped)
		c.logger.Debug().Msg("controller loop started")
		for {
			select {
			case <-ctx.Done():
				c.logger.Debug().Msg("controller loop stopped")
				return
			case fn := <-c.actions:
				fn()
			}
		}
	})
}

// Wait blocks until no remote call is running. It may be called while
// operations are still arriving; calls issued after Wait returns are not
// waited for.
func (c *Controller) Wait() {
	c.inflight.wait()
}

// do runs fn on the loop and returns its result.
func (c *Controller) do(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	select {
	case c.actions <- func() { done <- fn() }:
	case <-c.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-done
}

// goRemote issues call on its own goroutine. A non-nil then runs on the loop
// once call returns.
func (c *Controller) goRemote(call func(ctx context.Context) error, then func(err error)) {
	c.inflight.add()
	go func() {
		defer c.inflight.done()

		ctx, cancel := context.WithTimeout(context.Background(), c.opts.RequestTimeout)
		err := call(ctx)
		cancel()

		if then == nil {
			return
		}
		done := make(chan struct{})
		select {
		case c.actions <- func() { then(err); close(done) }:
			<-done
		case <-c.stopped:
		}
	}()
}

// State reports whether an edit dialog is open.
func (c *Controller) State(ctx context.Context) (EditState, error) {
	var state EditState
	err := c.do(ctx, func() error {
		state = c.state
		return nil
	})
	return state, err
}

// Tasks returns a copy of the in-memory list.
func (c *Controller) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, func() error {
		tasks = make([]models.Task, 0, len(c.tasks))
		for _, t := range c.tasks {
			tasks = append(tasks, *t)
		}
		return nil
	})
	return tasks, err
}

// Snapshot copies the document for rendering and drains pending alerts.
func (c *Controller) Snapshot(ctx context.Context) (dom.Snapshot, error) {
	var s dom.Snapshot
	err := c.do(ctx, func() error {
		s = c.doc.Snapshot()
		return nil
	})
	return s, err
}

// SetInputs types into the creation form.
func (c *Controller) SetInputs(ctx context.Context, name, description string) error {
	return c.do(ctx, func() error {
		c.doc.SetInputs(name, description)
		return nil
	})
}

// Click activates a control on a card or a dialog, as a user would.
func (c *Controller) Click(ctx context.Context, ref string, control dom.Control) error {
	return c.do(ctx, func() error {
		return c.doc.Click(ref, control)
	})
}

// FillDialog types into an open edit dialog.
func (c *Controller) FillDialog(ctx context.Context, ref, name, description string) error {
	return c.do(ctx, func() error {
		dialog, ok := c.doc.Dialog(ref)
		if !ok {
			return dom.ErrElementNotFound
		}
		dialog.Fill(name, description)
		return nil
	})
}

func (c *Controller) removeTask(task *models.Task) {
	c.tasks = slices.DeleteFunc(c.tasks, func(t *models.Task) bool { return t == task })
}
