package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/badges"
	"quizhub/db"
	"quizhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsService owns the per-user stats aggregate: it applies scored attempts
// as one atomic upsert and diffs earned badges around the update.
type StatsService struct {
	database *mongo.Database
	catalog  *badges.Catalog
	notify   func(models.GamificationEvent)
}

// NewStatsService wires the service. notify may be nil when no event
// broadcasting is wanted (tests, CLI tools).
func NewStatsService(database *mongo.Database, catalog *badges.Catalog, notify func(models.GamificationEvent)) *StatsService {
	return &StatsService{database: database, catalog: catalog, notify: notify}
}

// GetStats loads the user's aggregate, returning an empty snapshot when the
// user has never played: a missing row and all-zero counters are equivalent.
func (s *StatsService) GetStats(ctx context.Context, userID primitive.ObjectID) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.database.Collection(db.UserStatsCollection).
		FindOne(ctx, bson.M{"userId": userID}).Decode(&stats)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	return &stats, nil
}

// ApplyResult folds one scored attempt into the aggregate. The whole update
// is a single upsert with $inc/$max, so two racing submissions from the same
// user cannot lose counts. It returns the post-update snapshot and any badges
// newly earned by it.
func (s *StatsService) ApplyResult(ctx context.Context, userID primitive.ObjectID, quiz *models.Quiz, result *models.QuizResult) (*models.UserStats, []badges.Rule, error) {
	before, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := result.CompletedAt
	if now.IsZero() {
		now = time.Now()
	}

	inc := bson.M{
		"totalQuizzes":   1,
		"totalQuestions": result.TotalQuestions,
		"correctAnswers": result.CorrectAnswers,
		"totalPoints":    result.Score,
		"xp":             result.Score,
	}
	if result.Perfect() {
		inc["perfectScores"] = 1
	}
	if quiz.Category != "" {
		inc["categoryQuizzes."+quiz.Category] = 1
	}
	if quiz.Difficulty != "" {
		inc["difficultyQuizzes."+quiz.Difficulty] = 1
	}
	if quiz.Theme != "" {
		inc["themeQuizzes."+quiz.Theme] = 1
	}
	for qtype, count := range questionTypeCounts(quiz.Questions) {
		inc["questionTypeStats."+qtype] = count
	}
	inc["timeOfDayStats."+timeOfDayBucket(now)] = 1

	update := bson.M{
		"$inc": inc,
		"$max": bson.M{"bestStreak": result.Streak},
		"$set": bson.M{
			"currentStreak": result.Streak,
			"dailyStreak":   nextPeriodStreak(before.LastPlayedAt, now, before.DailyStreak, sameDay, previousDay),
			"weeklyStreak":  nextPeriodStreak(before.LastPlayedAt, now, before.WeeklyStreak, sameWeek, previousWeek),
			"monthlyStreak": nextPeriodStreak(before.LastPlayedAt, now, before.MonthlyStreak, sameMonth, previousMonth),
			"lastPlayedAt":  now,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{"userId": userID},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var after models.UserStats
	err = s.database.Collection(db.UserStatsCollection).
		FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&after)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update user stats: %w", err)
	}

	newBadges := s.diffBadges(before, &after, result)
	s.announce(userID, before, &after, newBadges)

	return &after, newBadges, nil
}

// IncrementCreated bumps the created-quiz counter after a quiz is authored.
func (s *StatsService) IncrementCreated(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{
		"$inc":         bson.M{"quizzesCreated": 1},
		"$set":         bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{"userId": userID},
	}
	_, err := s.database.Collection(db.UserStatsCollection).
		UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update created-quiz counter: %w", err)
	}
	return nil
}

// diffBadges evaluates the catalog before and after the update and returns
// the rules that flipped to earned. The result is only supplied to the
// after-evaluation: result-scoped badges belong to the attempt that
// produced them.
func (s *StatsService) diffBadges(before, after *models.UserStats, result *models.QuizResult) []badges.Rule {
	earnedBefore := s.catalog.Evaluate(before, nil)
	earnedAfter := s.catalog.Evaluate(after, result)

	var earned []badges.Rule
	for _, r := range s.catalog.Rules() {
		if earnedAfter[r.ID] && !earnedBefore[r.ID] {
			earned = append(earned, r)
		}
	}
	return earned
}

func (s *StatsService) announce(userID primitive.ObjectID, before, after *models.UserStats, newBadges []badges.Rule) {
	if s.notify == nil {
		return
	}
	now := time.Now()
	for _, r := range newBadges {
		s.notify(models.GamificationEvent{
			Type:      "badge_awarded",
			UserID:    userID.Hex(),
			BadgeID:   r.ID,
			BadgeName: r.Name,
			Timestamp: now,
		})
	}
	if after.Level() > before.Level() {
		s.notify(models.GamificationEvent{
			Type:      "level_up",
			UserID:    userID.Hex(),
			Level:     after.Level(),
			Timestamp: now,
		})
	}
}

func questionTypeCounts(questions []models.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range questions {
		if q.Type != "" {
			counts[q.Type]++
		}
	}
	return counts
}

// timeOfDayBucket maps a completion time into the four display buckets the
// time-of-day badges count.
func timeOfDayBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "morning"
	case h >= 12 && h < 17:
		return "afternoon"
	case h >= 17 && h < 22:
		return "evening"
	default:
		return "night"
	}
}

// nextPeriodStreak advances a play streak: unchanged within the same period,
// +1 when the previous period was played, reset to 1 otherwise.
func nextPeriodStreak(last, now time.Time, current int, same, previous func(a, b time.Time) bool) int {
	if last.IsZero() {
		return 1
	}
	if same(last, now) {
		if current < 1 {
			return 1
		}
		return current
	}
	if previous(last, now) {
		return current + 1
	}
	return 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func previousDay(a, b time.Time) bool {
	return sameDay(a.AddDate(0, 0, 1), b)
}

func sameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

func previousWeek(a, b time.Time) bool {
	return sameWeek(a.AddDate(0, 0, 7), b)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func previousMonth(a, b time.Time) bool {
	return sameMonth(a.AddDate(0, 1, 0), b)
}
