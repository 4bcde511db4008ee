package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types supported by the quiz engine
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeText           = "text"
	QuestionTypeRanking        = "ranking"
)

// Question is one question inside a quiz. Ranking questions carry their
// answer key in CorrectOrder; every other type uses CorrectAnswer.
type Question struct {
	ID            string   `bson:"id" json:"id"`
	Type          string   `bson:"type" json:"type"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string   `bson:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	CorrectOrder  []string `bson:"correctOrder,omitempty" json:"correctOrder,omitempty"`
	Explanation   string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Points        int      `bson:"points" json:"points"`
}

// Quiz is an authored quiz with an ordered question list
type Quiz struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreatorID   primitive.ObjectID `bson:"creatorId" json:"creatorId"`
	Title       string             `bson:"title" json:"title"`
	Topic       string             `bson:"topic" json:"topic"`
	Category    string             `bson:"category" json:"category"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"` // "easy", "medium", "hard"
	Theme       string             `bson:"theme,omitempty" json:"theme,omitempty"`
	Questions   []Question         `bson:"questions" json:"questions"`
	TimeLimit   int                `bson:"timeLimit,omitempty" json:"timeLimit,omitempty"` // seconds, 0 = untimed
	AIGenerated bool               `bson:"aiGenerated" json:"aiGenerated"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// TotalPoints sums the point values of every question in the quiz.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
