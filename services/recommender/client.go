package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	defaultModel     = "claude-3-5-sonnet-20241022"
	defaultMaxTokens = 4000
)

// Completer — внешний текстовый сервис, единственная точка недетерминизма конвейера
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type messageRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// AnthropicClient вызывает messages API без повторов: одна попытка на генерацию
type AnthropicClient struct {
	apiKey     string
	model      string
	maxTokens  int
	endpoint   string
	httpClient *http.Client
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		model:      defaultModel,
		maxTokens:  defaultMaxTokens,
		endpoint:   anthropicEndpoint,
		httpClient: &http.Client{},
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestData := messageRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))}
	}

	var completion messageResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to decode API response: %w", err)}
	}

	if len(completion.Content) == 0 {
		return "", &ResponseFormatError{Reason: "response contains no content"}
	}

	return completion.Content[0].Text, nil
}
