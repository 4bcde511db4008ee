// Package badges generates the badge rule catalog and evaluates it against
// user stats. The catalog is a plain value built once by NewCatalog; nothing
// in it mutates at runtime, so one instance can be shared by every handler.
package badges

import (
	"fmt"
	"strings"

	"quizhub/models"
)

// Condition decides whether a badge is earned given the current stats and,
// for result-scoped badges, the just-completed attempt. result may be nil;
// conditions that need it must return false instead of panicking.
type Condition func(stats *models.UserStats, result *models.QuizResult) bool

// Rule is one badge: a stable id, display metadata and a pure condition.
type Rule struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Tier        int       `json:"tier,omitempty"`
	Condition   Condition `json:"-"`
}

// Catalog is the full generated rule list, ordered and queryable by id.
type Catalog struct {
	rules []Rule
	byID  map[string]int
}

// Rules returns the generated rules in their stable order.
func (c *Catalog) Rules() []Rule {
	return c.rules
}

// Rule looks a rule up by id.
func (c *Catalog) Rule(id string) (Rule, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[idx], true
}

// Len returns the number of generated rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Evaluate applies every rule to the stats snapshot and returns the set of
// earned badge ids. It never mutates its inputs, so calling it twice with
// the same snapshot yields the same set.
func (c *Catalog) Evaluate(stats *models.UserStats, result *models.QuizResult) map[string]bool {
	earned := make(map[string]bool)
	if stats == nil {
		return earned
	}
	for _, r := range c.rules {
		if r.Condition != nil && r.Condition(stats, result) {
			earned[r.ID] = true
		}
	}
	return earned
}

func (c *Catalog) add(r Rule) {
	if _, dup := c.byID[r.ID]; dup {
		// Tier tables are deduplicated before generation, so a collision
		// here means a mistyped combo id. Keep the first rule.
		return
	}
	c.byID[r.ID] = len(c.rules)
	c.rules = append(c.rules, r)
}

// addTiered emits one rule per threshold in tiers with tier = index+1.
// Thresholds are >= comparisons (via cond), so earning tier k implies every
// lower tier given non-decreasing stats.
func (c *Catalog) addTiered(category, icon string, tiers []int, names []string, descFmt string, cond func(threshold int) Condition) {
	for i, n := range tiers {
		c.add(Rule{
			ID:          fmt.Sprintf("%s_%d", category, n),
			Category:    category,
			Name:        tierName(names, i),
			Description: fmt.Sprintf(descFmt, n),
			Icon:        icon,
			Tier:        i + 1,
			Condition:   cond(n),
		})
	}
}

// counterOf reads a per-key counter, treating a nil map or missing key as zero.
func counterOf(m map[string]int, key string) int {
	if m == nil {
		return 0
	}
	return m[key]
}

// NewCatalog builds the complete user badge catalog. It is deterministic:
// no I/O, no randomness, identical output on every call.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]int)}

	c.addTiered("quizzes", "trophy", quizCountTiers, quizCountNames,
		"Complete %d quizzes",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.TotalQuizzes >= n
			}
		})

	c.addTiered("questions", "target", questionCountTiers, questionCountNames,
		"Answer %d questions",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.TotalQuestions >= n
			}
		})

	c.addTiered("correct", "check", correctCountTiers, correctCountNames,
		"Answer %d questions correctly",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.CorrectAnswers >= n
			}
		})

	c.addTiered("streak", "flame", streakTiers, streakNames,
		"Answer %d questions in a row",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.BestStreak >= n
			}
		})

	c.addTiered("perfect", "star", perfectTiers, perfectNames,
		"Finish %d quizzes with a perfect score",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.PerfectScores >= n
			}
		})

	// Speed badges are the one inverted category: strict less-than on the
	// attempt time, and undecidable (false) without an attempt.
	c.addTiered("speed", "clock", speedTiers, speedNames,
		"Finish a quiz in under %d seconds",
		func(n int) Condition {
			return func(_ *models.UserStats, r *models.QuizResult) bool {
				return r != nil && r.TimeSpent < n
			}
		})

	c.addTiered("level", "crown", levelTiers, levelNames,
		"Reach level %d",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.Level() >= n
			}
		})

	c.addTiered("xp", "bolt", xpTiers, xpNames,
		"Earn %d xp",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.XP >= n
			}
		})

	c.addTiered("accuracy", "brain", accuracyTiers, accuracyNames,
		"Keep your lifetime accuracy at %d%% or better",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				// Guard the denominator; a fresh account earns nothing here.
				return s.TotalQuestions > 0 && s.Accuracy() >= float64(n)
			}
		})

	c.addTiered("created", "pencil", createdTiers, createdNames,
		"Create %d quizzes",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.QuizzesCreated >= n
			}
		})

	c.addTiered("points", "gem", pointsTiers, pointsNames,
		"Accumulate %d points",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.TotalPoints >= n
			}
		})

	c.addTiered("daily_streak", "calendar", dailyStreakTiers, dailyStreakNames,
		"Play on %d consecutive days",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.DailyStreak >= n
			}
		})

	c.addTiered("weekly_streak", "calendar", weeklyStreakTiers, weeklyStreakNames,
		"Play in %d consecutive weeks",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.WeeklyStreak >= n
			}
		})

	c.addTiered("monthly_streak", "calendar", monthlyStreakTiers, monthlyStreakNames,
		"Play in %d consecutive months",
		func(n int) Condition {
			return func(s *models.UserStats, _ *models.QuizResult) bool {
				return s.MonthlyStreak >= n
			}
		})

	c.addTiered("quiz_score", "medal", quizScoreTiers, quizScoreNames,
		"Score %d points in a single quiz",
		func(n int) Condition {
			return func(_ *models.UserStats, r *models.QuizResult) bool {
				return r != nil && r.Score >= n
			}
		})

	// Per-dimension counters: one tiered sequence per known key.
	for _, cat := range knownCategories {
		cat := cat
		c.addTiered("category_"+cat, "trophy", perCategoryTiers, nil,
			"Complete %d "+cat+" quizzes",
			func(n int) Condition {
				return func(s *models.UserStats, _ *models.QuizResult) bool {
					return counterOf(s.CategoryQuizzes, cat) >= n
				}
			})
	}
	for _, diff := range knownDifficulties {
		diff := diff
		c.addTiered("difficulty_"+diff, "medal", perDifficultyTiers, nil,
			"Complete %d "+diff+" quizzes",
			func(n int) Condition {
				return func(s *models.UserStats, _ *models.QuizResult) bool {
					return counterOf(s.DifficultyQuizzes, diff) >= n
				}
			})
	}
	for _, theme := range knownThemes {
		theme := theme
		c.addTiered("theme_"+theme, "star", perThemeTiers, nil,
			"Complete %d "+theme+" themed quizzes",
			func(n int) Condition {
				return func(s *models.UserStats, _ *models.QuizResult) bool {
					return counterOf(s.ThemeQuizzes, theme) >= n
				}
			})
	}
	for _, qt := range knownTypes {
		qt := qt
		c.addTiered("type_"+qt, "target", perTypeTiers, nil,
			"Answer %d "+strings.ReplaceAll(qt, "_", " ")+" questions",
			func(n int) Condition {
				return func(s *models.UserStats, _ *models.QuizResult) bool {
					return counterOf(s.QuestionTypeStats, qt) >= n
				}
			})
	}
	for _, tod := range knownTimesOfDay {
		tod := tod
		icon := "sun"
		if tod == "evening" || tod == "night" {
			icon = "moon"
		}
		c.addTiered("time_"+tod, icon, timeOfDayTiers, nil,
			"Complete %d quizzes in the "+tod,
			func(n int) Condition {
				return func(s *models.UserStats, _ *models.QuizResult) bool {
					return counterOf(s.TimeOfDayStats, tod) >= n
				}
			})
	}

	addComboRules(c)

	return c
}

// addComboRules emits the fixed list of named achievements that cut across
// single counters.
func addComboRules(c *Catalog) {
	c.add(Rule{
		ID: "combo_well_rounded", Category: "combo", Name: "Well Rounded",
		Description: "Complete quizzes in five different categories", Icon: "crown",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			distinct := 0
			for _, n := range s.CategoryQuizzes {
				if n > 0 {
					distinct++
				}
			}
			return distinct >= 5
		},
	})
	c.add(Rule{
		ID: "combo_all_difficulties", Category: "combo", Name: "No Fear",
		Description: "Complete at least one quiz at every difficulty", Icon: "medal",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			for _, diff := range knownDifficulties {
				if counterOf(s.DifficultyQuizzes, diff) == 0 {
					return false
				}
			}
			return true
		},
	})
	c.add(Rule{
		ID: "combo_round_the_clock", Category: "combo", Name: "Round the Clock",
		Description: "Complete a quiz in the morning, afternoon, evening and night", Icon: "clock",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			for _, tod := range knownTimesOfDay {
				if counterOf(s.TimeOfDayStats, tod) == 0 {
					return false
				}
			}
			return true
		},
	})
	c.add(Rule{
		ID: "combo_flawless_flash", Category: "combo", Name: "Flawless Flash",
		Description: "Finish a quiz perfectly in under a minute", Icon: "bolt",
		Condition: func(_ *models.UserStats, r *models.QuizResult) bool {
			return r != nil && r.Perfect() && r.TimeSpent < 60
		},
	})
	c.add(Rule{
		ID: "combo_perfect_start", Category: "combo", Name: "Perfect Start",
		Description: "Ace your very first quiz", Icon: "star",
		Condition: func(s *models.UserStats, r *models.QuizResult) bool {
			return r != nil && r.Perfect() && s.TotalQuizzes == 1
		},
	})
	c.add(Rule{
		ID: "combo_creator_player", Category: "combo", Name: "Both Sides of the Desk",
		Description: "Create 5 quizzes and complete 25", Icon: "pencil",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			return s.QuizzesCreated >= 5 && s.TotalQuizzes >= 25
		},
	})
	c.add(Rule{
		ID: "combo_sharpshooter", Category: "combo", Name: "Sharpshooter",
		Description: "Hold 90% accuracy across 100 answered questions", Icon: "target",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			return s.TotalQuestions >= 100 && s.Accuracy() >= 90
		},
	})
	c.add(Rule{
		ID: "combo_dedicated", Category: "combo", Name: "Dedicated",
		Description: "Keep a week-long daily streak over 50 completed quizzes", Icon: "flame",
		Condition: func(s *models.UserStats, _ *models.QuizResult) bool {
			return s.DailyStreak >= 7 && s.TotalQuizzes >= 50
		},
	})
}
