package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"quizhub/db"
	"quizhub/errs"
	"quizhub/models"
	"quizhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateGroup starts a new group with the caller as its first member
func CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	group := models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   userID,
		MemberIDs:   []primitive.ObjectID{userID},
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.GetCollection(db.GroupsCollection).InsertOne(ctx, group)
	if err != nil {
		writeError(c, err)
		return
	}
	group.ID = res.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, group)
}

// JoinGroup adds the caller to a group's member list
func JoinGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	groupID, ok := groupIDFromParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// $addToSet keeps double-joins idempotent.
	res, err := db.GetCollection(db.GroupsCollection).UpdateOne(
		ctx,
		bson.M{"_id": groupID},
		bson.M{"$addToSet": bson.M{"memberIds": userID}},
	)
	if err != nil {
		writeError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"joined": groupID.Hex()})
}

// GetGroup returns the group, its aggregate stats and earned group badges
func GetGroup(c *gin.Context) {
	groupID, ok := groupIDFromParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	group, err := groupService.GetGroup(ctx, groupID)
	if err != nil {
		writeError(c, err)
		return
	}

	stats, err := groupService.ComputeStats(ctx, group)
	if err != nil {
		writeError(c, err)
		return
	}
	earned := groupCatalog.Evaluate(stats)

	c.JSON(http.StatusOK, gin.H{
		"group":        group,
		"stats":        stats,
		"earnedBadges": earnedIDs(earned),
	})
}

// GetGroupBadges returns the group badge catalog annotated with earned flags
func GetGroupBadges(c *gin.Context) {
	groupID, ok := groupIDFromParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	group, err := groupService.GetGroup(ctx, groupID)
	if err != nil {
		writeError(c, err)
		return
	}
	stats, err := groupService.ComputeStats(ctx, group)
	if err != nil {
		writeError(c, err)
		return
	}
	earned := groupCatalog.Evaluate(stats)

	wall := make([]badgeStatus, 0, len(groupCatalog.Rules()))
	for _, r := range groupCatalog.Rules() {
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

// GetGroupLeaderboard ranks the group's members by total points
func GetGroupLeaderboard(c *gin.Context) {
	currentID, ok := currentUserID(c)
	if !ok {
		return
	}
	groupID, ok := groupIDFromParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	group, err := groupService.GetGroup(ctx, groupID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !group.HasMember(currentID) {
		writeError(c, errs.ErrForbidden)
		return
	}

	cursor, err := db.GetCollection(db.UserStatsCollection).
		Find(ctx, bson.M{"userId": bson.M{"$in": group.MemberIDs}})
	if err != nil {
		writeError(c, err)
		return
	}
	defer cursor.Close(ctx)

	type memberRow struct {
		userID primitive.ObjectID
		points int
		level  int
	}
	var rows []memberRow
	for cursor.Next(ctx) {
		var stats models.UserStats
		if err := cursor.Decode(&stats); err != nil {
			writeError(c, err)
			return
		}
		rows = append(rows, memberRow{userID: stats.UserID, points: stats.TotalPoints, level: stats.Level()})
	}
	if err := cursor.Err(); err != nil {
		writeError(c, err)
		return
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].points > rows[j].points })

	ids := make([]primitive.ObjectID, len(rows))
	for i, r := range rows {
		ids[i] = r.userID
	}
	users := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) > 0 {
		userCursor, err := db.GetCollection(db.UsersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			writeError(c, err)
			return
		}
		defer userCursor.Close(ctx)
		for userCursor.Next(ctx) {
			var u models.User
			if err := userCursor.Decode(&u); err != nil {
				writeError(c, err)
				return
			}
			users[u.ID] = u
		}
	}

	players := make([]Player, 0, len(rows))
	for i, row := range rows {
		user := users[row.userID]
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		players = append(players, Player{
			ID:          row.userID.Hex(),
			Rank:        i + 1,
			Name:        name,
			Points:      row.points,
			Level:       row.level,
			AvatarURL:   user.AvatarURL,
			CurrentUser: row.userID == currentID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

func groupIDFromParam(c *gin.Context) (primitive.ObjectID, bool) {
	groupID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return primitive.NilObjectID, false
	}
	return groupID, true
}
