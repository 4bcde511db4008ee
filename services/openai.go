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
	openAIURL          = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel = "gpt-4o-mini"
)

type openAIGenerator struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

func newOpenAIGenerator(apiKey, model string) *openAIGenerator {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &openAIGenerator{
		apiKey: apiKey,
		model:  model,
		url:    openAIURL,
		client: &http.Client{},
	}
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (g *openAIGenerator) Generate(ctx context.Context, req GenerationRequest) ([]models.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(openAIRequest{
		Model: g.model,
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a quiz author. Respond with JSON only."},
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
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &errs.GenerationError{Provider: "openai", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.GenerationError{Provider: "openai", Message: "failed to read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errs.GenerationError{Provider: "openai", Message: string(body)}
	}

	var responseData struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return nil, &errs.GenerationError{Provider: "openai", Message: "failed to parse response", Err: err}
	}
	if len(responseData.Choices) == 0 {
		return nil, &errs.GenerationError{Provider: "openai", Message: "unexpected response format"}
	}

	return parseQuestions("openai", responseData.Choices[0].Message.Content, req)
}
