package services

import (
	"errors"
	"testing"

	"quizhub/errs"
	"quizhub/models"
)

func validRequest() GenerationRequest {
	return GenerationRequest{
		Topic:             "world capitals",
		NumberOfQuestions: 5,
		Difficulty:        "easy",
		QuestionTypes:     []string{models.QuestionTypeMultipleChoice},
	}
}

func TestGenerationRequestBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationRequest)
		wantOK bool
	}{
		{"valid", func(r *GenerationRequest) {}, true},
		{"too few questions", func(r *GenerationRequest) { r.NumberOfQuestions = 4 }, false},
		{"too many questions", func(r *GenerationRequest) { r.NumberOfQuestions = 21 }, false},
		{"upper bound ok", func(r *GenerationRequest) { r.NumberOfQuestions = 20 }, true},
		{"empty topic", func(r *GenerationRequest) { r.Topic = "  " }, false},
		{"bad difficulty", func(r *GenerationRequest) { r.Difficulty = "impossible" }, false},
		{"no types", func(r *GenerationRequest) { r.QuestionTypes = nil }, false},
		{"unknown type", func(r *GenerationRequest) { r.QuestionTypes = []string{"essay"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatalf("expected validation error")
				}
				var ve *errs.ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestParseQuestionsMalformedJSON(t *testing.T) {
	_, err := parseQuestions("test", `{"oops": not json`, validRequest())
	if err == nil {
		t.Fatalf("expected error on malformed JSON")
	}
	var ge *errs.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if ge.Provider != "test" {
		t.Errorf("provider not preserved: %s", ge.Provider)
	}
}

func TestParseQuestionsEmptyArray(t *testing.T) {
	_, err := parseQuestions("test", `[]`, validRequest())
	var ge *errs.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError for zero questions, got %v", err)
	}
}

func TestParseQuestionsMissingAnswer(t *testing.T) {
	raw := `[{"type":"multiple_choice","question":"Capital of France?","options":["Paris","Rome"]}]`
	_, err := parseQuestions("test", raw, validRequest())
	var ge *errs.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError for missing correctAnswer, got %v", err)
	}
}

func TestParseQuestionsValidPayload(t *testing.T) {
	raw := "```json\n" + `[
	  {"type":"multiple_choice","question":"Capital of France?","options":["Paris","Rome","Berlin"],"correctAnswer":"Paris","explanation":"Paris is the capital.","points":10},
	  {"type":"true_false","question":"The Nile is in Africa.","correctAnswer":"True"},
	  {"type":"ranking","question":"Order these by size.","options":["Earth","Mars","Moon"],"correctAnswer":["Earth","Mars","Moon"]}
	]` + "\n```"

	questions, err := parseQuestions("test", raw, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	if questions[0].CorrectAnswer != "Paris" {
		t.Errorf("question 1 answer lost: %q", questions[0].CorrectAnswer)
	}
	if questions[1].Points != defaultQuestionPoints {
		t.Errorf("missing points should default to %d, got %d", defaultQuestionPoints, questions[1].Points)
	}
	if len(questions[2].CorrectOrder) != 3 || questions[2].CorrectOrder[0] != "Earth" {
		t.Errorf("ranking answer not parsed as ordered list: %v", questions[2].CorrectOrder)
	}
	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d missing generated id", i+1)
		}
	}
}

func TestParseQuestionsRankingNeedsList(t *testing.T) {
	raw := `[{"type":"ranking","question":"Order these.","correctAnswer":"not a list"}]`
	_, err := parseQuestions("test", raw, validRequest())
	var ge *errs.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError for scalar ranking answer, got %v", err)
	}
}
