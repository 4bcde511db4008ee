package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"quizhub/errs"
	"quizhub/models"
)

const (
	anthropicURL          = "https://api.anthropic.com/v1/messages"
	anthropicVersion      = "2023-06-01"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
	anthropicMaxTokens    = 4096
)

type anthropicGenerator struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

func newAnthropicGenerator(apiKey, model string) *anthropicGenerator {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &anthropicGenerator{
		apiKey: apiKey,
		model:  model,
		url:    anthropicURL,
		client: &http.Client{},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (g *anthropicGenerator) Generate(ctx context.Context, req GenerationRequest) ([]models.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(anthropicRequest{
		Model:     g.model,
		MaxTokens: anthropicMaxTokens,
		System:    "You are a quiz author. Respond with JSON only.",
		Messages: []anthropicMessage{
			{Role: "user", Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &errs.GenerationError{Provider: "anthropic", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.GenerationError{Provider: "anthropic", Message: "failed to read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errs.GenerationError{Provider: "anthropic", Message: string(body)}
	}

	var responseData struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return nil, &errs.GenerationError{Provider: "anthropic", Message: "failed to parse response", Err: err}
	}
	if len(responseData.Content) == 0 || responseData.Content[0].Text == "" {
		return nil, &errs.GenerationError{Provider: "anthropic", Message: "unexpected response format"}
	}

	return parseQuestions("anthropic", responseData.Content[0].Text, req)
}
