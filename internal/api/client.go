package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const (
	BaseURL     = "https://api.todoist.com/rest/v2"
	UserAgent   = "todoist-cli/0.1.0"
	ContentType = "application/json"
)

// Client is the Todoist REST API client. Each call issues exactly one
// HTTP request; there is no retrying, pacing or caching.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
}

// NewClient creates a new API client with the given token source.
func NewClient(ts oauth2.TokenSource) *Client {
	return &Client{
		baseURL:     BaseURL,
		tokenSource: ts,
		httpClient:  &http.Client{},
	}
}

// NewClientWithBaseURL creates a new API client with a custom base URL.
func NewClientWithBaseURL(ts oauth2.TokenSource, baseURL string) *Client {
	client := NewClient(ts)
	if strings.TrimSpace(baseURL) != "" {
		client.baseURL = strings.TrimRight(baseURL, "/")
	}

	return client
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	tok, err := c.tokenSource.Token()
	if err != nil {
		return &AuthError{Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", ContentType)

	if body != nil {
		req.Header.Set("Content-Type", ContentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)

		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Details:    strings.TrimSpace(string(bodyBytes)),
		}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	var bodyBytes []byte

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}

		bodyBytes = data
	}

	return c.do(ctx, http.MethodPost, path, bodyBytes, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListTasks lists active tasks, optionally filtered to a project.
// An empty projectID omits the project_id query parameter entirely.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]Task, error) {
	path := "/tasks"

	if projectID != "" {
		params := url.Values{}
		params.Set("project_id", projectID)
		path += "?" + params.Encode()
	}

	var tasks []Task
	if err := c.Get(ctx, path, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask creates a single task.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post(ctx, "/tasks", req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask updates a task. Only non-nil fields of req are sent, so
// fields the caller did not supply are left untouched server-side.
func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	id, err := SanitizeID(id)
	if err != nil {
		return nil, fmt.Errorf("task ID %q: %w", id, err)
	}

	var task Task
	if err := c.Post(ctx, "/tasks/"+id, req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	id, err := SanitizeID(id)
	if err != nil {
		return fmt.Errorf("task ID %q: %w", id, err)
	}

	return c.Delete(ctx, "/tasks/"+id)
}

// CloseTask marks a task as completed.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	id, err := SanitizeID(id)
	if err != nil {
		return fmt.Errorf("task ID %q: %w", id, err)
	}

	return c.Post(ctx, "/tasks/"+id+"/close", nil, nil)
}

// CreateTasks creates tasks one at a time, in order. The first failing
// request aborts the batch; tasks created before the failure remain on
// the server, and the returned error reports how many succeeded.
func (c *Client) CreateTasks(ctx context.Context, reqs []CreateTaskRequest) ([]Task, error) {
	created := make([]Task, 0, len(reqs))

	for i, req := range reqs {
		task, err := c.CreateTask(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("batch item %d of %d (%d already created): %w",
				i+1, len(reqs), len(created), err)
		}

		created = append(created, *task)
	}

	return created, nil
}

// ListProjects lists all projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.Get(ctx, "/projects", &projects); err != nil {
		return nil, err
	}

	return projects, nil
}
