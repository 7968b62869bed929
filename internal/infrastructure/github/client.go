// Package github talks to the GitHub REST API for issue sync.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"nexus/internal/shared/logger"
)

const httpTimeout = 10 * time.Second

type Issue struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state"` // "open" or "closed"
}

type Client struct {
	baseURL    string
	logger     logger.Interface
	fetchGroup singleflight.Group
}

func NewClient(baseURL string, log logger.Interface) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
	}
}

// httpClient builds a per-call client authenticated with the user's token.
func (c *Client) httpClient(ctx context.Context, token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, src)
	client.Timeout = httpTimeout
	return client
}

type createIssueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body,omitempty"`
	Labels []string `json:"labels,omitempty"`
}

// CreateIssue mirrors a ticket into the linked repository.
func (c *Client) CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*Issue, error) {
	payload, err := json.Marshal(createIssueRequest{Title: title, Body: body, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("failed to encode issue: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("failed to decode issue: %w", err)
	}
	return &issue, nil
}

// GetIssue fetches the current state of an issue. Concurrent fetches of the
// same issue are coalesced.
func (c *Client) GetIssue(ctx context.Context, token, owner, repo string, number int) (*Issue, error) {
	key := fmt.Sprintf("%s/%s#%d", owner, repo, number)
	v, err, _ := c.fetchGroup.Do(key, func() (interface{}, error) {
		return c.fetchIssue(ctx, token, owner, repo, number)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Issue), nil
}

func (c *Client) fetchIssue(ctx context.Context, token, owner, repo string, number int) (*Issue, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, owner, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("issue %s not found", fmt.Sprintf("%s/%s#%d", owner, repo, number))
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("failed to decode issue: %w", err)
	}
	return &issue, nil
}
