package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// --- API Data Structures ---

type anthropicRequest struct {
	Model     string             `json:"model"`
	Messages  []anthropicMessage `json:"messages"`
	System    string             `json:"system,omitempty"`
	MaxTokens int                `json:"max_tokens"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

// AnthropicClient talks to the Anthropic Messages API over plain HTTP.
type AnthropicClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ TextGenerator = (*AnthropicClient)(nil)

func NewAnthropicClient(apiKey, model string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key cannot be empty")
	}
	return &AnthropicClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Generate sends a single system+user exchange and returns the text reply.
func (c *AnthropicClient) Generate(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	payload := anthropicRequest{
		Model:     c.model,
		System:    systemPrompt,
		MaxTokens: maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: userMessage}},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal anthropic request payload: %w", err)
	}

	body, err := c.doRequestWithRetry(ctx, payloadBytes)
	if err != nil {
		return "", err
	}
	return parseAnthropicResponse(body)
}

func parseAnthropicResponse(body []byte) (string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ProviderError{Provider: "anthropic", Kind: KindBadResp, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(resp.Content) == 0 {
		return "", &ProviderError{Provider: "anthropic", Kind: KindBadResp, Err: errors.New("no content returned")}
	}
	var contentBuilder strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			contentBuilder.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(contentBuilder.String()), nil
}

// doRequestWithRetry performs the HTTP call with bounded retries and
// exponential backoff for transient failures. 4xx responses are never
// retried; context cancellation aborts the backoff immediately.
func (c *AnthropicClient) doRequestWithRetry(ctx context.Context, payload []byte) ([]byte, error) {
	var lastErr error
	delay := initialRetryDelay
	for i := 0; i < maxRetries; i++ {
		req, err := c.createRequest(ctx, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = &ProviderError{Provider: "anthropic", Kind: KindNetwork,
				Err: fmt.Errorf("request failed (attempt %d/%d): %w", i+1, maxRetries, err)}
			if err := sleepWithContext(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		if err := resp.Body.Close(); err != nil {
			log.Printf("Warning: failed to close anthropic response body: %v", err)
		}
		if readErr != nil {
			return nil, &ProviderError{Provider: "anthropic", Kind: KindNetwork,
				Err: fmt.Errorf("failed to read response body: %w", readErr)}
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}
		lastErr = &ProviderError{Provider: "anthropic", Kind: classifyStatus(resp.StatusCode),
			Err: fmt.Errorf("status %d (attempt %d/%d): %s", resp.StatusCode, i+1, maxRetries, string(body))}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != 429 {
			return nil, lastErr
		}
		if err := sleepWithContext(ctx, delay); err != nil {
			return nil, err
		}
		delay *= 2
	}
	return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
}

func (c *AnthropicClient) createRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", anthropicAPIURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")
	return req, nil
}

// sleepWithContext waits for d or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
