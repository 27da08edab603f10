package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// APIClient handles all communication with the chat server's REST API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client

	token string
}

// New creates a client for the server at baseURL authenticating with the
// given bearer token.
func New(baseURL, token string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
		token:      token,
	}
}

// do is the single, unified helper for making API requests.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unavailable: %w", err)
	}
	return resp, nil
}
