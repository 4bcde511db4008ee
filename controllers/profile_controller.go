package controllers

import (
	"context"
	"net/http"
	"time"

	"quizhub/db"
	"quizhub/models"
	"quizhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type badgeStatus struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        int    `json:"tier,omitempty"`
	Earned      bool   `json:"earned"`
}

// GetProfile returns the user, their stats, earned badges and recent results
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		writeError(c, err)
		return
	}

	if user.AvatarURL == "" {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		user.AvatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
	}

	stats, err := statsService.GetStats(ctx, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	earned := catalog.Evaluate(stats, nil)

	cursor, err := db.GetCollection(db.ResultsCollection).Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"completedAt": -1}).SetLimit(5),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cursor.Close(ctx)

	recent := []models.QuizResult{}
	if err := cursor.All(ctx, &recent); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"stats":         stats,
		"level":         stats.Level(),
		"accuracy":      stats.Accuracy(),
		"earnedBadges":  earnedIDs(earned),
		"recentResults": recent,
	})
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
}

// UpdateProfile updates display fields on the caller's account
func UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.DisplayName != "" {
		set["displayName"] = req.DisplayName
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.AvatarURL != "" {
		set["avatarUrl"] = req.AvatarURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// GetUserStats returns the caller's raw stats snapshot
func GetUserStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := statsService.GetStats(ctx, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"level":    stats.Level(),
		"accuracy": stats.Accuracy(),
	})
}

// GetUserBadges returns the whole catalog annotated with the caller's
// earned flags, ready to render as a badge wall.
func GetUserBadges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := statsService.GetStats(ctx, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	earned := catalog.Evaluate(stats, nil)

	wall := make([]badgeStatus, 0, catalog.Len())
	for _, r := range catalog.Rules() {
		wall = append(wall, badgeStatus{
			ID:          r.ID,
			Category:    r.Category,
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
			Tier:        r.Tier,
			Earned:      earned[r.ID],
		})
	}
	c.JSON(http.StatusOK, gin.H{"badges": wall, "earnedCount": len(earned)})
}

func earnedIDs(earned map[string]bool) []string {
	ids := make([]string, 0, len(earned))
	for id := range earned {
		ids = append(ids, id)
	}
	return ids
}
