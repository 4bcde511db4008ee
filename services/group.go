package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/db"
	"quizhub/errs"
	"quizhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupService computes group aggregates from member stats. Group stats are
// a derived view; they are cached in their own collection but always
// recomputable from the members' rows.
type GroupService struct {
	database *mongo.Database
}

func NewGroupService(database *mongo.Database) *GroupService {
	return &GroupService{database: database}
}

// GetGroup loads a group by id.
func (s *GroupService) GetGroup(ctx context.Context, groupID primitive.ObjectID) (*models.Group, error) {
	var group models.Group
	err := s.database.Collection(db.GroupsCollection).
		FindOne(ctx, bson.M{"_id": groupID}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return &group, nil
}

// ComputeStats folds the members' stat rows into the group aggregate and
// writes the refreshed snapshot back.
func (s *GroupService) ComputeStats(ctx context.Context, group *models.Group) (*models.GroupStats, error) {
	stats := &models.GroupStats{
		GroupID:     group.ID,
		MemberCount: len(group.MemberIDs),
		UpdatedAt:   time.Now(),
	}

	if len(group.MemberIDs) > 0 {
		cursor, err := s.database.Collection(db.UserStatsCollection).
			Find(ctx, bson.M{"userId": bson.M{"$in": group.MemberIDs}})
		if err != nil {
			return nil, fmt.Errorf("failed to load member stats: %w", err)
		}
		defer cursor.Close(ctx)

		totalQuestions := 0
		totalCorrect := 0
		for cursor.Next(ctx) {
			var member models.UserStats
			if err := cursor.Decode(&member); err != nil {
				return nil, fmt.Errorf("failed to decode member stats: %w", err)
			}
			stats.TotalQuizzes += member.TotalQuizzes
			stats.TotalPoints += member.TotalPoints
			totalQuestions += member.TotalQuestions
			totalCorrect += member.CorrectAnswers
		}
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate member stats: %w", err)
		}
		if totalQuestions > 0 {
			stats.AverageScore = float64(totalCorrect) / float64(totalQuestions) * 100
		}
	}

	update := bson.M{
		"$set": bson.M{
			"memberCount":  stats.MemberCount,
			"totalQuizzes": stats.TotalQuizzes,
			"totalPoints":  stats.TotalPoints,
			"averageScore": stats.AverageScore,
			"updatedAt":    stats.UpdatedAt,
		},
		"$setOnInsert": bson.M{"groupId": group.ID},
	}
	_, err := s.database.Collection(db.GroupStatsCollection).
		UpdateOne(ctx, bson.M{"groupId": group.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to store group stats: %w", err)
	}

	return stats, nil
}
