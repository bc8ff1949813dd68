// Package client provides the HTTP client and cached state for the
// presentation layer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thenoetrevino/listo/internal/models"
)

// Errors decoded back from API responses
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid request")
)

// Client is a typed HTTP client for the listo REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTodos fetches the full todo list
func (c *Client) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	var todos []*models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo creates a todo with the given text
func (c *Client) CreateTodo(ctx context.Context, text string) (*models.Todo, error) {
	body := map[string]string{"text": text}
	todo := &models.Todo{}
	if err := c.do(ctx, http.MethodPost, "/todos", body, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo applies a partial update; nil fields are left unchanged
func (c *Client) UpdateTodo(ctx context.Context, id int, text *string, completed *bool, labelIDs *[]int) (*models.Todo, error) {
	body := map[string]any{}
	if text != nil {
		body["text"] = *text
	}
	if completed != nil {
		body["completed"] = *completed
	}
	if labelIDs != nil {
		body["labels"] = *labelIDs
	}

	todo := &models.Todo{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), body, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// DeleteTodo removes a todo
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

// ListLabels fetches the full label list
func (c *Client) ListLabels(ctx context.Context) ([]*models.Label, error) {
	var labels []*models.Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a label with the given name
func (c *Client) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	body := map[string]string{"name": name}
	created := &models.Label{}
	if err := c.do(ctx, http.MethodPost, "/labels", body, created); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteLabel removes a label
func (c *Client) DeleteLabel(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/labels/%d", id), nil, nil)
}

// do executes one request and decodes the JSON response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns an API error body back into a sentinel error
func (c *Client) decodeError(resp *http.Response) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	msg := resp.Status
	if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	default:
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, msg)
	}
}
