package services

import (
	"context"

	"quizhub/errs"
	"quizhub/models"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(apiKey, model string) (*geminiGenerator, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	clientConfig := &genai.ClientConfig{}
	if apiKey != "" {
		clientConfig.APIKey = apiKey
	}
	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, req GenerationRequest) ([]models.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(req)), nil)
	if err != nil {
		return nil, &errs.GenerationError{Provider: "gemini", Message: "request failed", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return nil, &errs.GenerationError{Provider: "gemini", Message: "empty response"}
	}

	return parseQuestions("gemini", text, req)
}
