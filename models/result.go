package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmittedAnswer is one answer in a submission. Ranking questions submit
// an ordered list in Ranking; everything else submits Value.
type SubmittedAnswer struct {
	Value   string   `bson:"value,omitempty" json:"value,omitempty"`
	Ranking []string `bson:"ranking,omitempty" json:"ranking,omitempty"`
}

// QuizResult is the outcome of one playthrough, immutable once written.
type QuizResult struct {
	ID             primitive.ObjectID         `bson:"_id,omitempty" json:"id,omitempty"`
	QuizID         primitive.ObjectID         `bson:"quizId" json:"quizId"`
	UserID         primitive.ObjectID         `bson:"userId" json:"userId"`
	Score          int                        `bson:"score" json:"score"`             // points earned
	TotalPoints    int                        `bson:"totalPoints" json:"totalPoints"` // points available
	CorrectAnswers int                        `bson:"correctAnswers" json:"correctAnswers"`
	TotalQuestions int                        `bson:"totalQuestions" json:"totalQuestions"`
	TimeSpent      int                        `bson:"timeSpent" json:"timeSpent"` // seconds
	Streak         int                        `bson:"streak" json:"streak"`       // longest correct run in this attempt
	Answers        map[string]SubmittedAnswer `bson:"answers" json:"answers"`
	CompletedAt    time.Time                  `bson:"completedAt" json:"completedAt"`
}

// Perfect reports whether every question in the attempt was answered correctly.
func (r *QuizResult) Perfect() bool {
	return r.TotalQuestions > 0 && r.CorrectAnswers == r.TotalQuestions
}
