package badges

import (
	"testing"

	"quizhub/models"
)

func TestGroupCatalogIDsAreUnique(t *testing.T) {
	c := NewGroupCatalog()
	seen := make(map[string]bool)
	for _, r := range c.Rules() {
		if seen[r.ID] {
			t.Errorf("duplicate group badge id: %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestGroupMemberTiersAreMonotonic(t *testing.T) {
	stats := &models.GroupStats{MemberCount: 12}
	earned := NewGroupCatalog().Evaluate(stats)

	if !earned["group_members_2"] || !earned["group_members_5"] || !earned["group_members_10"] {
		t.Errorf("12 members should earn the 2, 5 and 10 member tiers, got %v", earned)
	}
	if earned["group_members_25"] {
		t.Errorf("12 members should not earn the 25 member tier")
	}
}

func TestGroupAverageGuardsEmptyGroup(t *testing.T) {
	stats := &models.GroupStats{MemberCount: 0, AverageScore: 100}
	earned := NewGroupCatalog().Evaluate(stats)
	for id := range earned {
		if id == "group_average_50" || id == "group_average_75" || id == "group_average_90" {
			t.Errorf("average badge %s earned by an empty group", id)
		}
	}
}

func TestGroupEvaluateNilStats(t *testing.T) {
	if earned := NewGroupCatalog().Evaluate(nil); len(earned) != 0 {
		t.Errorf("nil group stats should earn nothing, got %v", earned)
	}
}
