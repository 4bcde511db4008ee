package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"quizhub/badges"
	"quizhub/db"
	"quizhub/errs"
	"quizhub/models"
	"quizhub/scoring"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmitQuizRequest struct {
	Answers   map[string]models.SubmittedAnswer `json:"answers" binding:"required"`
	TimeSpent int                               `json:"timeSpent"`
}

type earnedBadge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// SubmitQuiz scores one playthrough. The order matters: the result is
// durably recorded before the stats aggregate is touched, and badges are
// evaluated against the snapshot that already reflects this submission.
func SubmitQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	// Speed badges compare against timeSpent, so a zero or negative value
	// would earn them all for free.
	if req.TimeSpent <= 0 {
		writeError(c, errs.Invalid("timeSpent", "must be a positive number of seconds"))
		return
	}

	if limiter != nil {
		allowed, err := limiter.Allow(c.Request.Context(), userID.Hex())
		if err != nil {
			log.Printf("rate limit check failed, allowing submission: %v", err)
		} else if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions, slow down"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := db.GetCollection(db.QuizzesCollection).FindOne(ctx, bson.M{"_id": quizID}).Decode(&quiz); err != nil {
		writeError(c, err)
		return
	}

	result := scoring.Score(quiz.Questions, req.Answers, req.TimeSpent)
	result.QuizID = quizID
	result.UserID = userID

	insertRes, err := db.GetCollection(db.ResultsCollection).InsertOne(ctx, result)
	if err != nil {
		writeError(c, err)
		return
	}
	result.ID = insertRes.InsertedID.(primitive.ObjectID)

	stats, newBadges, err := statsService.ApplyResult(ctx, userID, &quiz, &result)
	if err != nil {
		writeError(c, err)
		return
	}

	if leaderboard != nil && result.Score > 0 {
		if err := leaderboard.AddPoints(c.Request.Context(), userID.Hex(), result.Score); err != nil {
			// Cache only; Mongo remains the source of truth for rankings.
			log.Printf("failed to update leaderboard cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    result,
		"stats":     stats,
		"level":     stats.Level(),
		"newBadges": badgeViews(newBadges),
	})
}

func badgeViews(rules []badges.Rule) []earnedBadge {
	views := make([]earnedBadge, 0, len(rules))
	for _, r := range rules {
		views = append(views, earnedBadge{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
		})
	}
	return views
}

// GetMyResults lists the caller's past results, newest first.
func GetMyResults(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.ResultsCollection).Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"completedAt": -1}).SetLimit(50),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cursor.Close(ctx)

	results := []models.QuizResult{}
	if err := cursor.All(ctx, &results); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
