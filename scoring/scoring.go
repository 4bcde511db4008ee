// Package scoring grades one quiz submission. It is pure: no persistence,
// no clock beyond stamping the completion time, and it never fails as long
// as the quiz questions exist.
package scoring

import (
	"strings"
	"time"

	"quizhub/models"
)

// Score grades answers against the quiz's questions in their stored order
// and returns the attempt result. A question with no submitted answer is
// simply incorrect. Streak is the longest run of consecutive correct
// answers within this attempt.
func Score(questions []models.Question, answers map[string]models.SubmittedAnswer, timeSpent int) models.QuizResult {
	result := models.QuizResult{
		TotalQuestions: len(questions),
		TimeSpent:      timeSpent,
		Answers:        answers,
		CompletedAt:    time.Now(),
	}

	run := 0
	for _, q := range questions {
		result.TotalPoints += q.Points

		answer, submitted := answers[q.ID]
		if submitted && isCorrect(q, answer) {
			result.CorrectAnswers++
			result.Score += q.Points
			run++
			if run > result.Streak {
				result.Streak = run
			}
		} else {
			run = 0
		}
	}

	return result
}

// isCorrect applies the per-type correctness rule: ranking questions need
// exact sequence equality, everything else exact then case-insensitive
// string equality (the latter covers free-text answers).
func isCorrect(q models.Question, answer models.SubmittedAnswer) bool {
	if q.Type == models.QuestionTypeRanking || len(q.CorrectOrder) > 0 {
		return sameOrder(q.CorrectOrder, answer.Ranking)
	}
	if answer.Value == q.CorrectAnswer {
		return true
	}
	return strings.EqualFold(answer.Value, q.CorrectAnswer)
}

func sameOrder(want, got []string) bool {
	if len(want) == 0 || len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
