// Package backend talks to the REST task store.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

const tasksPath = "/tasks"

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s",
		e.Method, e.URL, e.Code, http.StatusText(e.Code))
}

type Client struct {
	logger  zerolog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(logger zerolog.Logger, baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    httpClient,
	}, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, tasksPath, nil, &tasks)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, task models.Task) error {
	return c.do(ctx, http.MethodPost, tasksPath, task, nil)
}

func (c *Client) UpdateTask(ctx context.Context, task models.Task) error {
	return c.do(ctx, http.MethodPut, taskPath(task.ID), task, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return tasksPath + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Msg("store responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
