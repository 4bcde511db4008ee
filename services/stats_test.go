package services

import (
	"testing"
	"time"

	"quizhub/models"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestNextDailyStreak(t *testing.T) {
	tests := []struct {
		name    string
		last    time.Time
		now     time.Time
		current int
		want    int
	}{
		{"first play ever", time.Time{}, date(2025, 3, 10, 9), 0, 1},
		{"same day keeps streak", date(2025, 3, 10, 9), date(2025, 3, 10, 21), 4, 4},
		{"same day repairs zero", date(2025, 3, 10, 9), date(2025, 3, 10, 21), 0, 1},
		{"next day extends", date(2025, 3, 10, 23), date(2025, 3, 11, 1), 4, 5},
		{"gap resets", date(2025, 3, 10, 9), date(2025, 3, 13, 9), 9, 1},
		{"month boundary extends", date(2025, 3, 31, 12), date(2025, 4, 1, 12), 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextPeriodStreak(tt.last, tt.now, tt.current, sameDay, previousDay)
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextWeeklyStreak(t *testing.T) {
	// 2025-03-10 is a Monday; the prior Friday is the previous ISO week.
	lastWeek := date(2025, 3, 7, 10)
	thisWeek := date(2025, 3, 10, 10)

	if got := nextPeriodStreak(lastWeek, thisWeek, 2, sameWeek, previousWeek); got != 3 {
		t.Errorf("consecutive weeks should extend: got %d", got)
	}
	if got := nextPeriodStreak(lastWeek, date(2025, 3, 24, 10), 2, sameWeek, previousWeek); got != 1 {
		t.Errorf("skipped week should reset: got %d", got)
	}
}

func TestNextMonthlyStreak(t *testing.T) {
	if got := nextPeriodStreak(date(2025, 2, 28, 10), date(2025, 3, 1, 10), 1, sameMonth, previousMonth); got != 2 {
		t.Errorf("consecutive months should extend: got %d", got)
	}
	if got := nextPeriodStreak(date(2025, 1, 10, 10), date(2025, 3, 10, 10), 5, sameMonth, previousMonth); got != 1 {
		t.Errorf("skipped month should reset: got %d", got)
	}
}

func TestTimeOfDayBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{21, "evening"},
		{22, "night"},
		{3, "night"},
	}
	for _, tt := range tests {
		if got := timeOfDayBucket(date(2025, 3, 10, tt.hour)); got != tt.want {
			t.Errorf("hour %d: got %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestQuestionTypeCounts(t *testing.T) {
	questions := []models.Question{
		{Type: models.QuestionTypeMultipleChoice},
		{Type: models.QuestionTypeMultipleChoice},
		{Type: models.QuestionTypeRanking},
		{Type: ""},
	}
	counts := questionTypeCounts(questions)
	if counts[models.QuestionTypeMultipleChoice] != 2 || counts[models.QuestionTypeRanking] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Errorf("empty type should not be counted")
	}
}

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{4200, 5},
		{10000, 11},
	}
	for _, tt := range tests {
		s := models.UserStats{XP: tt.xp}
		if got := s.Level(); got != tt.want {
			t.Errorf("xp %d: got level %d, want %d", tt.xp, got, tt.want)
		}
	}
}
