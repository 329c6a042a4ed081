// Package client talks to the admin API over HTTP. It implements the
// collaborator interfaces consumed by the management page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// ErrFetchFailed is returned when a list could not be retrieved at all.
var ErrFetchFailed = errors.New("fetch failed")

// APIError is a non-2xx response of the admin API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

// ServerMessage returns the message reported by the API, possibly empty.
func (e *APIError) ServerMessage() string {
	return e.Message
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client is an admin API client rooted at a base URL such as
// http://localhost:8080/api/v1.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client. A nil httpClient is replaced by one with timeout.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Users returns the user endpoints.
func (c *Client) Users() *Users {
	return &Users{c: c}
}

// Posts returns the post endpoints.
func (c *Client) Posts() *Posts {
	return &Posts{c: c}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("api call failed", "method", method, "path", path, "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
			apiErr.Message = er.Message
			apiErr.Fields = er.Fields
		}
		logger.Log.Warnw("api returned error", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) list(ctx context.Context, path string, out any) error {
	err := c.do(ctx, http.MethodGet, path, nil, out)
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFetchFailed, err)
}

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

// Users is the HTTP collaborator for user records.
type Users struct {
	c *Client
}

// List fetches every user.
func (u *Users) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := u.c.list(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create posts a new user.
func (u *Users) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	var user models.User
	if err := u.c.do(ctx, http.MethodPost, "/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the editable fields of user id.
func (u *Users) Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	var user models.User
	if err := u.c.do(ctx, http.MethodPut, itemPath("/users", id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes user id.
func (u *Users) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, http.MethodDelete, itemPath("/users", id), nil, nil)
}

// Posts is the HTTP collaborator for post records.
type Posts struct {
	c *Client
}

// List fetches every post.
func (p *Posts) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := p.c.list(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create posts a new post.
func (p *Posts) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	var post models.Post
	if err := p.c.do(ctx, http.MethodPost, "/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the editable fields of post id.
func (p *Posts) Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	var post models.Post
	if err := p.c.do(ctx, http.MethodPut, itemPath("/posts", id), in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes post id.
func (p *Posts) Delete(ctx context.Context, id int64) error {
	return p.c.do(ctx, http.MethodDelete, itemPath("/posts", id), nil, nil)
}

// Publish moves a draft post to published.
func (p *Posts) Publish(ctx context.Context, id int64) (*models.Post, error) {
	return p.transition(ctx, id, lifecycle.ActionPublish)
}

// Archive moves a published post to archived.
func (p *Posts) Archive(ctx context.Context, id int64) (*models.Post, error) {
	return p.transition(ctx, id, lifecycle.ActionArchive)
}

// Restore moves an archived post back to draft.
func (p *Posts) Restore(ctx context.Context, id int64) (*models.Post, error) {
	return p.transition(ctx, id, lifecycle.ActionRestore)
}

func (p *Posts) transition(ctx context.Context, id int64, action lifecycle.Action) (*models.Post, error) {
	var post models.Post
	if err := p.c.do(ctx, http.MethodPost, itemPath("/posts", id)+"/"+string(action), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
