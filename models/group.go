package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a named set of users competing on a shared leaderboard
type Group struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	CreatorID   primitive.ObjectID   `bson:"creatorId" json:"creatorId"`
	MemberIDs   []primitive.ObjectID `bson:"memberIds" json:"memberIds"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}

// HasMember reports whether the user belongs to the group.
func (g *Group) HasMember(userID primitive.ObjectID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
