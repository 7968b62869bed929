// Package ai implements the generative model client used by the sprint
// planner. The provider speaks an OpenAI-compatible chat completions API and
// is asked for strict JSON; a single retry with a harder instruction covers
// the common failure mode of prose-wrapped output.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nexus/internal/domain/planner"
	"nexus/internal/shared/logger"
)

const defaultTimeout = 30 * time.Second

// jsonOnlyAddendum is appended to the prompt on the retry attempt.
const jsonOnlyAddendum = "\n\nIMPORTANT: respond with ONLY the JSON object. No prose, no markdown fences."

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	config     Config
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(config Config, log logger.Interface) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratePlan asks the model for a sprint backlog and decodes the reply
// into a draft plan. Schema or JSON failures trigger exactly one retry with
// the JSON-only addendum; a second failure is returned to the caller.
func (c *Client) GeneratePlan(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error) {
	prompt := buildPrompt(projectName, goal, memberDesignations)

	plan, err := c.requestPlan(ctx, prompt)
	if err == nil {
		return plan, nil
	}

	c.logger.Warnw("plan generation attempt failed, retrying with strict JSON instruction", "error", err)

	plan, retryErr := c.requestPlan(ctx, prompt+jsonOnlyAddendum)
	if retryErr != nil {
		return nil, fmt.Errorf("plan generation failed after retry: %w", retryErr)
	}
	return plan, nil
}

func (c *Client) requestPlan(ctx context.Context, prompt string) (*planner.Plan, error) {
	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan planner.Plan
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &plan); err != nil {
		return nil, fmt.Errorf("model did not return valid JSON: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %w", err)
	}
	return &plan, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// stripCodeFences unwraps ```json ... ``` blocks some models insist on.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
