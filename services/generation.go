package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizhub/config"
	"quizhub/errs"
	"quizhub/models"

	"github.com/google/uuid"
)

const (
	minGeneratedQuestions = 5
	maxGeneratedQuestions = 20
	defaultQuestionPoints = 10
)

var validQuestionTypes = map[string]bool{
	models.QuestionTypeMultipleChoice: true,
	models.QuestionTypeTrueFalse:      true,
	models.QuestionTypeText:           true,
	models.QuestionTypeRanking:        true,
}

// GenerationRequest describes one AI question-generation call.
type GenerationRequest struct {
	Topic             string   `json:"topic"`
	NumberOfQuestions int      `json:"numberOfQuestions"`
	Difficulty        string   `json:"difficulty"`
	QuestionTypes     []string `json:"questionTypes"`
}

// Validate rejects malformed requests before any provider call is made.
func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return errs.Invalid("topic", "must not be empty")
	}
	if r.NumberOfQuestions < minGeneratedQuestions || r.NumberOfQuestions > maxGeneratedQuestions {
		return errs.Invalid("numberOfQuestions",
			fmt.Sprintf("must be between %d and %d", minGeneratedQuestions, maxGeneratedQuestions))
	}
	switch r.Difficulty {
	case "easy", "medium", "hard":
	default:
		return errs.Invalid("difficulty", "must be easy, medium or hard")
	}
	if len(r.QuestionTypes) == 0 {
		return errs.Invalid("questionTypes", "must list at least one question type")
	}
	for _, qt := range r.QuestionTypes {
		if !validQuestionTypes[qt] {
			return errs.Invalid("questionTypes", "unknown question type "+qt)
		}
	}
	return nil
}

// Generator turns a generation request into a validated question list.
// Implementations must return a GenerationError rather than a partial list
// when the provider response is unusable.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]models.Question, error)
}

// NewGenerator picks the provider strategy from config.
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.AI.Provider {
	case "openai":
		return newOpenAIGenerator(cfg.AI.APIKey, cfg.AI.Model), nil
	case "anthropic":
		return newAnthropicGenerator(cfg.AI.APIKey, cfg.AI.Model), nil
	case "gemini":
		return newGeminiGenerator(cfg.AI.APIKey, cfg.AI.Model)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
}

// buildPrompt is shared by every provider strategy so the output contract
// stays identical regardless of which LLM answers.
func buildPrompt(req GenerationRequest) string {
	return fmt.Sprintf(
		`Generate %d %s-difficulty quiz questions about "%s".
Allowed question types: %s.

Required Output Format (JSON array):
[
  {
    "type": "multiple_choice | true_false | text | ranking",
    "question": "the question text",
    "options": ["only for multiple_choice and ranking"],
    "correctAnswer": "string for most types, ordered array of strings for ranking",
    "explanation": "one short sentence",
    "points": 10
  }
]

Provide ONLY the JSON array without additional text or markdown formatting.`,
		req.NumberOfQuestions, req.Difficulty, req.Topic, strings.Join(req.QuestionTypes, ", "))
}

// cleanModelOutput strips markdown fences models like to wrap JSON in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

type generatedQuestion struct {
	Type          string          `json:"type"`
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	Points        int             `json:"points"`
}

// parseQuestions turns raw model output into validated questions. Malformed
// JSON, missing fields or an empty array all fail with a GenerationError;
// callers never see a partially usable list.
func parseQuestions(provider, raw string, req GenerationRequest) ([]models.Question, error) {
	cleaned := cleanModelOutput(raw)

	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil {
		return nil, &errs.GenerationError{Provider: provider, Message: "response is not valid JSON", Err: err}
	}
	if len(generated) == 0 {
		return nil, &errs.GenerationError{Provider: provider, Message: "provider returned zero questions"}
	}

	questions := make([]models.Question, 0, len(generated))
	for i, g := range generated {
		q := models.Question{
			ID:          uuid.NewString(),
			Type:        g.Type,
			Question:    strings.TrimSpace(g.Question),
			Options:     g.Options,
			Explanation: g.Explanation,
			Points:      g.Points,
		}
		if q.Points <= 0 {
			q.Points = defaultQuestionPoints
		}
		if !validQuestionTypes[q.Type] {
			return nil, &errs.GenerationError{Provider: provider,
				Message: fmt.Sprintf("question %d has unknown type %q", i+1, g.Type)}
		}
		if q.Question == "" {
			return nil, &errs.GenerationError{Provider: provider,
				Message: fmt.Sprintf("question %d is missing its text", i+1)}
		}

		if q.Type == models.QuestionTypeRanking {
			if err := json.Unmarshal(g.CorrectAnswer, &q.CorrectOrder); err != nil || len(q.CorrectOrder) < 2 {
				return nil, &errs.GenerationError{Provider: provider,
					Message: fmt.Sprintf("question %d needs an ordered answer list", i+1)}
			}
		} else {
			if err := json.Unmarshal(g.CorrectAnswer, &q.CorrectAnswer); err != nil || q.CorrectAnswer == "" {
				return nil, &errs.GenerationError{Provider: provider,
					Message: fmt.Sprintf("question %d is missing its correct answer", i+1)}
			}
		}
		if q.Type == models.QuestionTypeMultipleChoice && len(q.Options) < 2 {
			return nil, &errs.GenerationError{Provider: provider,
				Message: fmt.Sprintf("question %d needs at least two options", i+1)}
		}

		questions = append(questions, q)
	}

	return questions, nil
}
