package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGroupHasMember(t *testing.T) {
	member := primitive.NewObjectID()
	outsider := primitive.NewObjectID()
	group := Group{MemberIDs: []primitive.ObjectID{primitive.NewObjectID(), member}}

	if !group.HasMember(member) {
		t.Errorf("member should be reported as belonging to the group")
	}
	if group.HasMember(outsider) {
		t.Errorf("non-member should not be reported as belonging to the group")
	}
	empty := Group{}
	if empty.HasMember(member) {
		t.Errorf("empty group has no members")
	}
}
