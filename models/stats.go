package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XPPerLevel is how much cumulative xp each level takes.
const XPPerLevel = 1000

// UserStats is the per-user aggregate all badge evaluation runs against.
// Every counter is non-negative and only ever incremented; a missing map
// key counts as zero. Level is derived from XP, not stored.
type UserStats struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	TotalQuizzes   int                `bson:"totalQuizzes" json:"totalQuizzes"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers int                `bson:"correctAnswers" json:"correctAnswers"`
	TotalPoints    int                `bson:"totalPoints" json:"totalPoints"`
	XP             int                `bson:"xp" json:"xp"`
	CurrentStreak  int                `bson:"currentStreak" json:"currentStreak"`
	BestStreak     int                `bson:"bestStreak" json:"bestStreak"`
	PerfectScores  int                `bson:"perfectScores" json:"perfectScores"`
	QuizzesCreated int                `bson:"quizzesCreated" json:"quizzesCreated"`
	DailyStreak    int                `bson:"dailyStreak" json:"dailyStreak"`
	WeeklyStreak   int                `bson:"weeklyStreak" json:"weeklyStreak"`
	MonthlyStreak  int                `bson:"monthlyStreak" json:"monthlyStreak"`
	LastPlayedAt   time.Time          `bson:"lastPlayedAt,omitempty" json:"lastPlayedAt,omitempty"`

	CategoryQuizzes   map[string]int `bson:"categoryQuizzes,omitempty" json:"categoryQuizzes,omitempty"`
	DifficultyQuizzes map[string]int `bson:"difficultyQuizzes,omitempty" json:"difficultyQuizzes,omitempty"`
	ThemeQuizzes      map[string]int `bson:"themeQuizzes,omitempty" json:"themeQuizzes,omitempty"`
	QuestionTypeStats map[string]int `bson:"questionTypeStats,omitempty" json:"questionTypeStats,omitempty"`
	TimeOfDayStats    map[string]int `bson:"timeOfDayStats,omitempty" json:"timeOfDayStats,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Level derives the player level from cumulative xp: each level takes
// another XPPerLevel, so 0..999 xp is level 1, 1000..1999 is level 2, etc.
func (s *UserStats) Level() int {
	return s.XP/XPPerLevel + 1
}

// Accuracy returns the lifetime correct-answer percentage, zero when no
// questions have been answered yet.
func (s *UserStats) Accuracy() float64 {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100
}

// GroupStats mirrors UserStats at group granularity.
type GroupStats struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GroupID      primitive.ObjectID `bson:"groupId" json:"groupId"`
	MemberCount  int                `bson:"memberCount" json:"memberCount"`
	TotalQuizzes int                `bson:"totalQuizzes" json:"totalQuizzes"`
	TotalPoints  int                `bson:"totalPoints" json:"totalPoints"`
	AverageScore float64            `bson:"averageScore" json:"averageScore"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
