// Package client is the Go client for the WellMind backend API, used by
// the chat session and quick-log frontends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
)

type Client struct {
	baseURL string
	userID  string
	hc      *http.Client
}

// New builds a client for the given server. userID may be empty, in which
// case the server falls back to its configured demo identity.
func New(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		hc:      http.DefaultClient,
	}
}

type chatRequest struct {
	Message        string `json:"message"`
	IncludeContext bool   `json:"include_context"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Chat sends one message and returns the coach's reply. The server builds
// the wellness context from the user's recent logs.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out chatResponse
	if err := c.post(ctx, "/api/chat", chatRequest{Message: message, IncludeContext: true}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

type appendResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// AppendLog writes one wellness entry.
func (c *Client) AppendLog(ctx context.Context, category models.Category, in services.AppendInput) error {
	var out appendResponse
	return c.post(ctx, "/api/logs/"+string(category), in, &out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("unable to reach the backend server: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("HTTP %d error", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
