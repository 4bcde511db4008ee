package scoring

import (
	"testing"

	"quizhub/models"
)

// Three questions: a correct multiple choice, a wrong true/false, and a
// correct ranking. The wrong answer in the middle splits the streak into
// two runs of one.
func TestScoreMixedQuiz(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.QuestionTypeMultipleChoice, CorrectAnswer: "Paris", Points: 10},
		{ID: "q2", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 10},
		{ID: "q3", Type: models.QuestionTypeRanking, CorrectOrder: []string{"A", "B", "C"}, Points: 10},
	}
	answers := map[string]models.SubmittedAnswer{
		"q1": {Value: "Paris"},
		"q2": {Value: "False"},
		"q3": {Ranking: []string{"A", "B", "C"}},
	}

	result := Score(questions, answers, 95)

	if result.CorrectAnswers != 2 {
		t.Errorf("expected 2 correct answers, got %d", result.CorrectAnswers)
	}
	if result.Score != 20 {
		t.Errorf("expected score 20, got %d", result.Score)
	}
	if result.TotalPoints != 30 {
		t.Errorf("expected 30 total points, got %d", result.TotalPoints)
	}
	if result.TotalQuestions != 3 {
		t.Errorf("expected 3 total questions, got %d", result.TotalQuestions)
	}
	if result.Streak != 1 {
		t.Errorf("expected max streak 1, got %d", result.Streak)
	}
	if result.TimeSpent != 95 {
		t.Errorf("expected timeSpent 95, got %d", result.TimeSpent)
	}
}

func TestTextAnswersMatchCaseInsensitively(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.QuestionTypeText, CorrectAnswer: "Nile", Points: 10},
	}
	answers := map[string]models.SubmittedAnswer{"q1": {Value: "nile"}}

	result := Score(questions, answers, 10)
	if result.CorrectAnswers != 1 {
		t.Errorf("case-insensitive match failed: %d correct", result.CorrectAnswers)
	}
}

func TestRankingRequiresExactOrder(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.QuestionTypeRanking, CorrectOrder: []string{"A", "B", "C"}, Points: 10},
	}

	wrongOrder := map[string]models.SubmittedAnswer{"q1": {Ranking: []string{"B", "A", "C"}}}
	if r := Score(questions, wrongOrder, 10); r.CorrectAnswers != 0 {
		t.Errorf("out-of-order ranking scored correct")
	}

	shorter := map[string]models.SubmittedAnswer{"q1": {Ranking: []string{"A", "B"}}}
	if r := Score(questions, shorter, 10); r.CorrectAnswers != 0 {
		t.Errorf("incomplete ranking scored correct")
	}
}

func TestStreakTracksLongestRun(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 5},
		{ID: "q2", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 5},
		{ID: "q3", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 5},
		{ID: "q4", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 5},
		{ID: "q5", Type: models.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 5},
	}
	answers := map[string]models.SubmittedAnswer{
		"q1": {Value: "True"},
		"q2": {Value: "True"},
		"q3": {Value: "False"},
		"q4": {Value: "True"},
		"q5": {Value: "True"},
	}

	result := Score(questions, answers, 60)
	if result.Streak != 2 {
		t.Errorf("expected max streak 2, got %d", result.Streak)
	}
	if result.CorrectAnswers != 4 {
		t.Errorf("expected 4 correct, got %d", result.CorrectAnswers)
	}
}

func TestUnansweredQuestionsAreIncorrect(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.QuestionTypeText, CorrectAnswer: "Go", Points: 10},
		{ID: "q2", Type: models.QuestionTypeText, CorrectAnswer: "Rob Pike", Points: 10},
	}
	answers := map[string]models.SubmittedAnswer{"q1": {Value: "Go"}}

	result := Score(questions, answers, 30)
	if result.CorrectAnswers != 1 || result.Score != 10 {
		t.Errorf("expected 1 correct / 10 points, got %d / %d", result.CorrectAnswers, result.Score)
	}
}

func TestEmptyQuizScoresZero(t *testing.T) {
	result := Score(nil, nil, 0)
	if result.TotalQuestions != 0 || result.CorrectAnswers != 0 || result.Score != 0 || result.Streak != 0 {
		t.Errorf("empty quiz should produce an all-zero result, got %+v", result)
	}
	if result.Perfect() {
		t.Errorf("an empty attempt must not count as perfect")
	}
}
