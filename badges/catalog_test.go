package badges

import (
	"reflect"
	"strings"
	"testing"

	"quizhub/models"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	c := NewCatalog()
	seen := make(map[string]bool)
	for _, r := range c.Rules() {
		if seen[r.ID] {
			t.Errorf("duplicate badge id generated: %s", r.ID)
		}
		seen[r.ID] = true
	}
}

// The perfect-score base and extended tier arrays both contain 150; the
// merged table must yield exactly one perfect_150 rule.
func TestOverlappingTierArraysProduceOneRule(t *testing.T) {
	c := NewCatalog()
	count := 0
	for _, r := range c.Rules() {
		if r.ID == "perfect_150" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one perfect_150 rule, got %d", count)
	}
}

func TestCatalogIsDeterministic(t *testing.T) {
	a := NewCatalog()
	b := NewCatalog()
	if a.Len() != b.Len() {
		t.Fatalf("rule counts differ across generations: %d vs %d", a.Len(), b.Len())
	}
	for i, r := range a.Rules() {
		other := b.Rules()[i]
		if r.ID != other.ID || r.Name != other.Name || r.Tier != other.Tier {
			t.Errorf("rule %d differs across generations: %q vs %q", i, r.ID, other.ID)
		}
	}
}

func TestTierThresholdsAreMonotonic(t *testing.T) {
	stats := &models.UserStats{TotalQuizzes: 12}
	earned := NewCatalog().Evaluate(stats, nil)

	if !earned["quizzes_1"] || !earned["quizzes_5"] || !earned["quizzes_10"] {
		t.Errorf("12 quizzes should earn tiers 1, 5 and 10, got %v", earned)
	}
	if earned["quizzes_25"] {
		t.Errorf("12 quizzes should not earn the 25-quiz tier")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	stats := &models.UserStats{
		TotalQuizzes:   30,
		TotalQuestions: 200,
		CorrectAnswers: 180,
		XP:             4200,
		BestStreak:     12,
		CategoryQuizzes: map[string]int{
			"science": 11,
			"history": 6,
		},
	}
	c := NewCatalog()
	first := c.Evaluate(stats, nil)
	second := c.Evaluate(stats, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("evaluation not idempotent: %v vs %v", first, second)
	}
}

func TestAccuracyRuleGuardsZeroQuestions(t *testing.T) {
	stats := &models.UserStats{TotalQuestions: 0, CorrectAnswers: 0}
	earned := NewCatalog().Evaluate(stats, nil)
	for id := range earned {
		if strings.HasPrefix(id, "accuracy_") {
			t.Errorf("accuracy badge %s earned with zero answered questions", id)
		}
	}
}

func TestSpeedRulesWithoutResult(t *testing.T) {
	stats := &models.UserStats{TotalQuizzes: 500, XP: 100000}
	earned := NewCatalog().Evaluate(stats, nil)
	for id := range earned {
		if strings.HasPrefix(id, "speed_") {
			t.Errorf("speed badge %s earned without a quiz result", id)
		}
	}
}

func TestSpeedRulesUseStrictBound(t *testing.T) {
	c := NewCatalog()
	stats := &models.UserStats{}

	atBound := &models.QuizResult{TimeSpent: 30}
	if c.Evaluate(stats, atBound)["speed_30"] {
		t.Errorf("30s attempt should not earn the under-30s badge")
	}

	under := &models.QuizResult{TimeSpent: 29}
	if !c.Evaluate(stats, under)["speed_30"] {
		t.Errorf("29s attempt should earn the under-30s badge")
	}
}

func TestPerDimensionCounters(t *testing.T) {
	stats := &models.UserStats{
		CategoryQuizzes:   map[string]int{"science": 10},
		DifficultyQuizzes: map[string]int{"hard": 5},
	}
	earned := NewCatalog().Evaluate(stats, nil)

	if !earned["category_science_5"] || !earned["category_science_10"] {
		t.Errorf("10 science quizzes should earn the 5 and 10 science tiers")
	}
	if earned["category_history_5"] {
		t.Errorf("history tier earned with no history quizzes")
	}
	if !earned["difficulty_hard_5"] {
		t.Errorf("5 hard quizzes should earn the first hard tier")
	}
}

func TestComboRules(t *testing.T) {
	c := NewCatalog()

	stats := &models.UserStats{
		TotalQuizzes: 1,
		CategoryQuizzes: map[string]int{
			"science": 1, "history": 1, "sports": 1, "general": 1, "technology": 1,
		},
	}
	perfect := &models.QuizResult{CorrectAnswers: 5, TotalQuestions: 5, TimeSpent: 45}

	earned := c.Evaluate(stats, perfect)
	if !earned["combo_well_rounded"] {
		t.Errorf("five distinct categories should earn combo_well_rounded")
	}
	if !earned["combo_flawless_flash"] {
		t.Errorf("perfect 45s attempt should earn combo_flawless_flash")
	}
	if !earned["combo_perfect_start"] {
		t.Errorf("perfect first quiz should earn combo_perfect_start")
	}
	if earned["combo_all_difficulties"] {
		t.Errorf("combo_all_difficulties earned with no difficulty counters")
	}
}

func TestRuleLookup(t *testing.T) {
	c := NewCatalog()
	r, ok := c.Rule("quizzes_10")
	if !ok {
		t.Fatalf("quizzes_10 missing from catalog")
	}
	if r.Tier != 3 {
		t.Errorf("quizzes_10 expected tier 3, got %d", r.Tier)
	}
	if _, ok := c.Rule("no_such_badge"); ok {
		t.Errorf("lookup of unknown id should fail")
	}
}

func TestEvaluateNeverMutatesInputs(t *testing.T) {
	stats := &models.UserStats{TotalQuizzes: 7, CategoryQuizzes: map[string]int{"science": 3}}
	before := *stats
	NewCatalog().Evaluate(stats, nil)
	if stats.TotalQuizzes != before.TotalQuizzes || stats.CategoryQuizzes["science"] != 3 {
		t.Errorf("evaluation mutated the stats snapshot")
	}
}
