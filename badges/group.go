package badges

import (
	"fmt"

	"quizhub/models"
)

// GroupCondition is the group-level counterpart of Condition.
type GroupCondition func(stats *models.GroupStats) bool

// GroupRule is one group badge.
type GroupRule struct {
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Tier        int            `json:"tier,omitempty"`
	Condition   GroupCondition `json:"-"`
}

// GroupCatalog is the generated group badge list.
type GroupCatalog struct {
	rules []GroupRule
	byID  map[string]int
}

var (
	memberCountTiers  = mergeTiers([]int{2, 5, 10, 25}, []int{50, 100})
	groupQuizzesTiers = mergeTiers([]int{10, 50, 100, 500}, []int{500, 1000})
	groupPointsTiers  = mergeTiers([]int{1000, 10000, 50000}, []int{100000})
	groupAvgTiers     = []int{50, 75, 90} // average score percent

	memberCountNames  = []string{"Duo", "Squad", "Crew", "Club"}
	groupQuizzesNames = []string{"Getting Going", "Working Together", "Quiz Factory"}
	groupPointsNames  = []string{"Pooling Points", "Treasury", "Vault"}
	groupAvgNames     = []string{"Solid Team", "Strong Team", "Dream Team"}
)

// Rules returns the generated group rules in their stable order.
func (c *GroupCatalog) Rules() []GroupRule {
	return c.rules
}

// Len reports the number of generated group rules.
func (c *GroupCatalog) Len() int {
	return len(c.rules)
}

// Rule looks a group rule up by id.
func (c *GroupCatalog) Rule(id string) (GroupRule, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return GroupRule{}, false
	}
	return c.rules[idx], true
}

// Evaluate returns the set of group badge ids currently earned.
func (c *GroupCatalog) Evaluate(stats *models.GroupStats) map[string]bool {
	earned := make(map[string]bool)
	if stats == nil {
		return earned
	}
	for _, r := range c.rules {
		if r.Condition != nil && r.Condition(stats) {
			earned[r.ID] = true
		}
	}
	return earned
}

func (c *GroupCatalog) add(r GroupRule) {
	if _, dup := c.byID[r.ID]; dup {
		return
	}
	c.byID[r.ID] = len(c.rules)
	c.rules = append(c.rules, r)
}

func (c *GroupCatalog) addTiered(category, icon string, tiers []int, names []string, descFmt string, cond func(threshold int) GroupCondition) {
	for i, n := range tiers {
		c.add(GroupRule{
			ID:          fmt.Sprintf("group_%s_%d", category, n),
			Category:    "group_" + category,
			Name:        tierName(names, i),
			Description: fmt.Sprintf(descFmt, n),
			Icon:        icon,
			Tier:        i + 1,
			Condition:   cond(n),
		})
	}
}

// NewGroupCatalog builds the group badge catalog; deterministic like NewCatalog.
func NewGroupCatalog() *GroupCatalog {
	c := &GroupCatalog{byID: make(map[string]int)}

	c.addTiered("members", "crown", memberCountTiers, memberCountNames,
		"Grow the group to %d members",
		func(n int) GroupCondition {
			return func(s *models.GroupStats) bool { return s.MemberCount >= n }
		})

	c.addTiered("quizzes", "trophy", groupQuizzesTiers, groupQuizzesNames,
		"Complete %d quizzes as a group",
		func(n int) GroupCondition {
			return func(s *models.GroupStats) bool { return s.TotalQuizzes >= n }
		})

	c.addTiered("points", "gem", groupPointsTiers, groupPointsNames,
		"Accumulate %d points as a group",
		func(n int) GroupCondition {
			return func(s *models.GroupStats) bool { return s.TotalPoints >= n }
		})

	c.addTiered("average", "medal", groupAvgTiers, groupAvgNames,
		"Hold a group average score of %d%%",
		func(n int) GroupCondition {
			return func(s *models.GroupStats) bool {
				// Average is derived from member results; zero members means
				// no average to judge.
				return s.MemberCount > 0 && s.AverageScore >= float64(n)
			}
		})

	return c
}
