package badges

import "sort"

// Tier tables. Each category keeps its original "base" thresholds and the
// "extended" thresholds added later; mergeTiers unions and sorts them so the
// generated ids stay unique even where the two arrays overlap.

var (
	quizCountTiers     = mergeTiers([]int{1, 5, 10, 25, 50, 100}, []int{100, 250, 500, 1000})
	questionCountTiers = mergeTiers([]int{10, 50, 100, 250, 500, 1000}, []int{1000, 2500, 5000})
	correctCountTiers  = mergeTiers([]int{10, 50, 100, 250, 500}, []int{500, 1000, 2500})
	streakTiers        = mergeTiers([]int{3, 5, 10, 15, 20}, []int{25, 50})
	perfectTiers       = mergeTiers([]int{1, 5, 10, 25, 50, 100, 150}, []int{150, 250, 500})
	speedTiers         = []int{30, 60, 120, 300} // seconds, strict upper bounds
	levelTiers         = mergeTiers([]int{2, 5, 10, 25, 50}, []int{75, 100})
	xpTiers            = mergeTiers([]int{1000, 5000, 10000, 25000, 50000}, []int{100000})
	accuracyTiers      = []int{50, 75, 90, 95, 99} // percent
	createdTiers       = mergeTiers([]int{1, 5, 10, 25}, []int{50, 100})
	pointsTiers        = mergeTiers([]int{100, 1000, 5000, 10000, 50000}, []int{100000})
	dailyStreakTiers   = mergeTiers([]int{3, 7, 14, 30}, []int{60, 100})
	weeklyStreakTiers  = []int{2, 4, 8, 12}
	monthlyStreakTiers = []int{2, 3, 6, 12}
	quizScoreTiers     = []int{50, 100, 150, 200} // single-attempt point totals

	perCategoryTiers   = []int{5, 10, 25, 50}
	perDifficultyTiers = []int{5, 10, 25, 50}
	perThemeTiers      = []int{5, 10, 25}
	perTypeTiers       = []int{10, 50, 100}
	timeOfDayTiers     = []int{5, 25, 50}
)

// Dimension keys the per-key counter categories iterate. These mirror the
// values the stats updater records.
var (
	knownCategories = []string{
		"general", "science", "history", "geography",
		"sports", "entertainment", "technology", "literature",
	}
	knownDifficulties = []string{"easy", "medium", "hard"}
	knownThemes       = []string{"classic", "space", "retro", "nature"}
	knownTypes        = []string{"multiple_choice", "true_false", "text", "ranking"}
	knownTimesOfDay   = []string{"morning", "afternoon", "evening", "night"}
)

// Curated tier names. Tiers past the end of a list reuse earlier names
// (index modulo length); ids stay unique regardless.
var (
	quizCountNames = []string{
		"First Steps", "Getting Warmed Up", "Quiz Regular",
		"Quiz Enthusiast", "Quiz Devotee", "Centurion",
	}
	questionCountNames = []string{"Curious Mind", "Inquisitor", "Question Hound", "Scholar"}
	correctCountNames  = []string{"On Target", "Sharp", "Knowledgeable", "Walking Encyclopedia"}
	streakNames        = []string{"On a Roll", "Hot Hand", "Unstoppable", "Untouchable"}
	perfectNames       = []string{"Flawless", "Perfectionist", "Machine", "Immaculate"}
	speedNames         = []string{"Lightning Round", "Quick Thinker", "Steady Pace", "Finisher"}
	levelNames         = []string{"Rising Star", "Climber", "Veteran", "Elite", "Legend"}
	xpNames            = []string{"Spark", "Powerhouse", "Dynamo", "Titan"}
	accuracyNames      = []string{"Better Than Chance", "Consistent", "Precise", "Surgical", "Near Perfect"}
	createdNames       = []string{"Author", "Quizsmith", "Prolific", "Librarian"}
	pointsNames        = []string{"Point Collector", "Point Hoarder", "High Roller", "Bank"}
	dailyStreakNames   = []string{"Daily Habit", "Week Warrior", "Fortnight Fighter", "Monthly Master"}
	weeklyStreakNames  = []string{"Weekender", "Regular", "Committed"}
	monthlyStreakNames = []string{"Monthly Visitor", "Seasoned", "Annual Fixture"}
	quizScoreNames     = []string{"Half Century", "Century", "Big Score", "Double Century"}
)

// mergeTiers unions the base and extended threshold arrays, dropping
// duplicates and non-positive values, and returns them sorted ascending.
// Keeping this deterministic is what makes generated badge ids unique.
func mergeTiers(base, extended []int) []int {
	seen := make(map[int]bool, len(base)+len(extended))
	out := make([]int, 0, len(base)+len(extended))
	for _, n := range base {
		if n > 0 && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range extended {
		if n > 0 && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// tierName cycles through the curated list when there are more tiers than names.
func tierName(names []string, idx int) string {
	if len(names) == 0 {
		return ""
	}
	return names[idx%len(names)]
}
