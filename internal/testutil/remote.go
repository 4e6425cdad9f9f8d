// Package testutil holds fakes shared by tests across packages.
package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

// Call records one request made to a FakeRemote.
type Call struct {
	Method string
	ID     int64
	Task   models.Task
}

// FakeRemote is an in-memory store that records every call. It is safe for
// concurrent use. Setting an Err field makes the matching method fail.
type FakeRemote struct {
	mu    sync.Mutex
	tasks []models.Task
	calls []Call

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeRemote(tasks ...models.Task) *FakeRemote {
	return &FakeRemote{tasks: tasks}
}

func (f *FakeRemote) ListTasks(_ context.Context) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: "GET"})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return slices.Clone(f.tasks), nil
}

func (f *FakeRemote) CreateTask(_ context.Context, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: "POST", ID: task.ID, Task: task})
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *FakeRemote) UpdateTask(_ context.Context, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: "PUT", ID: task.ID, Task: task})
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == task.ID {
			f.tasks[i] = task
		}
	}
	return nil
}

func (f *FakeRemote) DeleteTask(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: "DELETE", ID: id})
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.tasks = slices.DeleteFunc(f.tasks, func(t models.Task) bool { return t.ID == id })
	return nil
}

func (f *FakeRemote) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallsOf returns the recorded calls with the given HTTP method.
func (f *FakeRemote) CallsOf(method string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *FakeRemote) Stored() []models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tasks)
}
