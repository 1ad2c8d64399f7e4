// Package api is the only module that talks HTTP to the remote task store.
// It knows nothing about validation, session state, or presentation: each
// method issues exactly one request and returns the decoded resource or an
// error. There are no retries; recovery is the caller's decision.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// Client wraps the json-server-compatible REST surface of the task store.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// NewClient builds a client for the store at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: 10 * time.Second,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindPersonByDocument fetches the user collection and resolves the person
// by id equality client-side; the collection endpoint has no server-side
// filtering. Returns (nil, nil) when no person matches.
func (c *Client) FindPersonByDocument(ctx context.Context, document string) (*task.Person, error) {
	var people []task.Person
	if err := c.do(ctx, http.MethodGet, "/users", nil, &people); err != nil {
		c.log.Warn("person lookup failed", "document", document, "err", err)
		return nil, err
	}
	want := task.NormalizeID(document)
	for i := range people {
		if people[i].ID == want {
			return &people[i], nil
		}
	}
	return nil, nil
}

// ListTasks fetches the full task collection. The store has no server-side
// filtering; callers derive their own views.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		c.log.Warn("task list failed", "err", err)
		return nil, err
	}
	return tasks, nil
}

// CreateTask submits the draft payload and returns the stored task,
// including the server-assigned id.
func (c *Client) CreateTask(ctx context.Context, t task.Task) (task.Task, error) {
	var created task.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", t, &created); err != nil {
		c.log.Warn("task create failed", "title", t.Title, "err", err)
		return task.Task{}, err
	}
	return created, nil
}

// UpdateTask applies a partial update and returns the full updated task.
func (c *Client) UpdateTask(ctx context.Context, id task.ID, patch task.Patch) (task.Task, error) {
	var updated task.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id.String(), patch, &updated); err != nil {
		c.log.Warn("task update failed", "id", id, "err", err)
		return task.Task{}, err
	}
	return updated, nil
}

// DeleteTask removes the task from the store.
func (c *Client) DeleteTask(ctx context.Context, id task.ID) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil); err != nil {
		c.log.Warn("task delete failed", "id", id, "err", err)
		return err
	}
	return nil
}

// do issues one request and decodes the response into out when non-nil.
// Any transport failure, non-2xx status, or decode failure is an error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}
