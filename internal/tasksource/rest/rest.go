// Package rest implements the task source over the HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// ClientConfig is the configuration for the API task source.
type ClientConfig struct {
	// BaseURL is the API root, e.g. https://tools.example.org.
	BaseURL string
	// Token is the bearer token sent on every request. Empty means
	// unauthenticated; the server answers 401 and the engine treats it as a
	// precondition failure.
	Token  string
	Client *http.Client
	Logger log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client talks to the project task endpoints of the HTTP API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  log.Logger
}

// NewClient creates a new API task source.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  cfg.Client,
		logger:  cfg.Logger,
	}, nil
}

// ListTasks returns the persisted tasks of a project.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	err := c.do(ctx, http.MethodGet, c.tasksURL(projectID), nil, &tasks)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask persists a new task and returns the stored record with its
// server assigned id.
func (c *Client) CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error) {
	var env taskEnvelope
	err := c.do(ctx, http.MethodPost, c.tasksURL(t.ProjectID), t, &env)
	if err != nil {
		return nil, err
	}

	c.logger.Debugf("Created task %s (%s response)", env.task.ID, env.kind)
	task := env.task
	return &task, nil
}

// UpdateTask applies a partial update and returns the stored record.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error) {
	var env taskEnvelope
	err := c.do(ctx, http.MethodPut, c.taskURL(projectID, taskID), u, &env)
	if err != nil {
		return nil, err
	}

	task := env.task
	return &task, nil
}

// DeleteTask deletes a persisted task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(projectID, taskID), nil, nil)
}

func (c *Client) tasksURL(projectID string) string {
	return fmt.Sprintf("%s/api/projects/%s/tasks", c.baseURL, url.PathEscape(projectID))
}

func (c *Client) taskURL(projectID, taskID string) string {
	return fmt.Sprintf("%s/api/projects/%s/tasks/%s", c.baseURL, url.PathEscape(projectID), url.PathEscape(taskID))
}

func (c *Client) do(ctx context.Context, method, u string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// statusError maps API status codes onto the model sentinels so callers can
// react with errors.Is.
func statusError(resp *http.Response) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)
	msg := apiErr.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, model.ErrUnauthenticated)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%s: %w", msg, model.ErrPlanLimit)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, model.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, model.ErrAlreadyExists)
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", msg, model.ErrNotValid)
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, msg)
}

const (
	responseDirect  = "direct"
	responseWrapped = "wrapped"
)

// taskEnvelope resolves the two shapes task endpoints may answer with, a
// task object directly or wrapped as {"task": {...}}. Downstream code only
// ever sees the resolved task.
type taskEnvelope struct {
	task model.ProjectTask
	kind string
}

func (e *taskEnvelope) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Task *model.ProjectTask `json:"task"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Task != nil {
		e.task = *wrapper.Task
		e.kind = responseWrapped
		return nil
	}

	var direct model.ProjectTask
	if err := json.Unmarshal(data, &direct); err != nil {
		return err
	}
	e.task = direct
	e.kind = responseDirect
	return nil
}
