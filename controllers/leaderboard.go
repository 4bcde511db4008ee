package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"quizhub/db"
	"quizhub/internal/rank"
	"quizhub/models"
	"quizhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leaderboardSize = 50

// LeaderboardData defines the response structure for the frontend
type LeaderboardData struct {
	Players []Player `json:"players"`
	Stats   []Stat   `json:"stats"`
}

// Player represents a leaderboard entry
type Player struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Level       int    `json:"level"`
	AvatarURL   string `json:"avatarUrl"`
	CurrentUser bool   `json:"currentUser"`
}

// Stat represents a single statistic
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetLeaderboard returns the top players by total points. The Redis sorted
// set answers when it is warm; otherwise the ranking is read from Mongo and
// the cache rebuilt.
func GetLeaderboard(c *gin.Context) {
	currentID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := cachedRanking(ctx)
	if err != nil || len(entries) == 0 {
		entries, err = mongoRanking(ctx)
		if err != nil {
			writeError(c, err)
			return
		}
		if leaderboard != nil {
			if err := leaderboard.Rebuild(ctx, entries); err != nil {
				log.Printf("failed to rebuild leaderboard cache: %v", err)
			}
		}
	}

	players, err := decorateEntries(ctx, entries, currentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LeaderboardData{
		Players: players,
		Stats:   headlineStats(ctx),
	})
}

func cachedRanking(ctx context.Context) ([]rank.Entry, error) {
	if leaderboard == nil {
		return nil, nil
	}
	return leaderboard.Top(ctx, leaderboardSize)
}

func mongoRanking(ctx context.Context) ([]rank.Entry, error) {
	cursor, err := db.GetCollection(db.UserStatsCollection).Find(
		ctx,
		bson.M{"totalPoints": bson.M{"$gt": 0}},
		options.Find().SetSort(bson.D{{Key: "totalPoints", Value: -1}}).SetLimit(leaderboardSize),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []rank.Entry
	for cursor.Next(ctx) {
		var stats models.UserStats
		if err := cursor.Decode(&stats); err != nil {
			return nil, err
		}
		entries = append(entries, rank.Entry{UserID: stats.UserID.Hex(), Points: stats.TotalPoints})
	}
	return entries, cursor.Err()
}

// decorateEntries joins the ranking with user display data.
func decorateEntries(ctx context.Context, entries []rank.Entry, currentID primitive.ObjectID) ([]Player, error) {
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		id, err := primitive.ObjectIDFromHex(e.UserID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	users := make(map[string]models.User, len(ids))
	if len(ids) > 0 {
		cursor, err := db.GetCollection(db.UsersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		for cursor.Next(ctx) {
			var u models.User
			if err := cursor.Decode(&u); err != nil {
				return nil, err
			}
			users[u.ID.Hex()] = u
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
	}

	players := make([]Player, 0, len(entries))
	for i, e := range entries {
		user, known := users[e.UserID]
		if !known {
			continue // stale cache entry for a deleted account
		}
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		avatarURL := user.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
		}
		players = append(players, Player{
			ID:          e.UserID,
			Rank:        i + 1,
			Name:        name,
			Points:      e.Points,
			Level:       e.Points/models.XPPerLevel + 1,
			AvatarURL:   avatarURL,
			CurrentUser: e.UserID == currentID.Hex(),
		})
	}
	return players, nil
}

func headlineStats(ctx context.Context) []Stat {
	totalUsers, err := db.GetCollection(db.UsersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		totalUsers = 0
	}

	todayStart := time.Now().Truncate(24 * time.Hour)
	playsToday, err := db.GetCollection(db.ResultsCollection).CountDocuments(ctx, bson.M{
		"completedAt": bson.M{"$gte": todayStart},
	})
	if err != nil {
		playsToday = 0
	}

	totalQuizzes, err := db.GetCollection(db.QuizzesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		totalQuizzes = 0
	}

	return []Stat{
		{Icon: "crown", Value: strconv.FormatInt(totalUsers, 10), Label: "REGISTERED PLAYERS"},
		{Icon: "medal", Value: strconv.FormatInt(playsToday, 10), Label: "QUIZZES PLAYED TODAY"},
		{Icon: "trophy", Value: strconv.FormatInt(totalQuizzes, 10), Label: "QUIZZES AVAILABLE"},
	}
}
