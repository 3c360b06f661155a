// Package boardclient talks to the board API the way the web client does:
// log in once, keep the session cookie, fetch columns, send reorder batches.
package boardclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const maxErrorBody = 4 << 10

// Card is a task inside a column
type Card struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Owner     *string   `json:"owner"`
	Tag       *string   `json:"tag"`
	Priority  string    `json:"priority"`
	Estimate  *string   `json:"est"`
	CreatedAt time.Time `json:"createdAt"`
	DueDate   *string   `json:"dueDate"`
}

// Column is one board column with its cards in position order
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Tasks []Card `json:"tasks"`
}

// Member is the logged-in user
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Role  string `json:"role"`
}

// Move is one entry of a reorder batch
type Move struct {
	TaskID    string `json:"taskId"`
	ColumnID  string `json:"columnId"`
	SortOrder int    `json:"sortOrder"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	switch e.Status {
	case http.StatusUnauthorized:
		return "not logged in or session expired: " + e.Message
	case http.StatusTooManyRequests:
		return "rate limited: " + e.Message
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient gets a
// default with a timeout; the client's cookie jar is always replaced so the
// session survives between calls.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	hc := &http.Client{Timeout: 15 * time.Second}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	hc.Jar = jar
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}, nil
}

// Login opens a session
func (c *Client) Login(ctx context.Context, name, password string) (*Member, error) {
	var member Member
	body := map[string]string{"name": name, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Logout ends the session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Columns fetches the whole board
func (c *Client) Columns(ctx context.Context) ([]Column, error) {
	var columns []Column
	if err := c.do(ctx, http.MethodGet, "/api/columns", nil, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// ReorderTasks sends the final placement of every listed task.
func (c *Client) ReorderTasks(ctx context.Context, moves []Move) error {
	if moves == nil {
		moves = []Move{}
	}
	return c.do(ctx, http.MethodPut, "/api/tasks/reorder", map[string][]Move{"moves": moves}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := sonic.ConfigStd.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := sonic.ConfigStd.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
