// Package catalog holds the static keyword tables used by the candidate
// scoring engine: policy theme categories, sentiment lexicons, experience
// indicators, and strength categories. All tables are immutable and
// initialized at package load; iteration order is declaration order, which
// scoring relies on as its tie-break rule.
package catalog

import "strings"

// Category is a named political-issue bucket with its keyword set.
// Keywords are lowercase; matching against them is substring-based.
type Category struct {
	ID       string
	Title    string
	Keywords []string
}

// Themes is the ordered policy category table. Declaration order is
// significant: equal-hit-count categories are ranked in this order.
var Themes = []Category{
	{
		ID:       "education",
		Title:    "Education",
		Keywords: []string{"education", "school", "student", "learning", "teacher", "scholarship", "university", "curriculum"},
	},
	{
		ID:       "healthcare",
		Title:    "Healthcare",
		Keywords: []string{"health", "hospital", "medical", "doctor", "medicine", "clinic", "patient"},
	},
	{
		ID:       "economy",
		Title:    "Economy",
		Keywords: []string{"economy", "economic", "business", "jobs", "employment", "investment", "trade", "livelihood"},
	},
	{
		ID:       "environment",
		Title:    "Environment",
		Keywords: []string{"environment", "climate", "pollution", "renewable", "conservation", "waste", "green"},
	},
	{
		ID:       "security",
		Title:    "Security",
		Keywords: []string{"security", "police", "crime", "safety", "defense", "peace", "order"},
	},
	{
		ID:       "infrastructure",
		Title:    "Infrastructure",
		Keywords: []string{"infrastructure", "roads", "bridges", "transport", "housing", "construction", "utilities"},
	},
	{
		ID:       "social_welfare",
		Title:    "Social Welfare",
		Keywords: []string{"welfare", "poverty", "assistance", "subsidy", "pension", "relief", "aid"},
	},
	{
		ID:       "governance",
		Title:    "Governance",
		Keywords: []string{"governance", "transparency", "corruption", "accountability", "reform", "integrity"},
	},
}

// FindTheme returns the category whose ID matches id (case-insensitive).
func FindTheme(id string) (Category, bool) {
	lowered := strings.ToLower(id)
	for _, c := range Themes {
		if c.ID == lowered {
			return c, true
		}
	}
	return Category{}, false
}

// PositiveWords and NegativeWords are the sentiment lexicons. Hits are
// counted as substring occurrences, same as theme keywords.
var PositiveWords = []string{
	"success", "achieved", "led", "reform", "improve", "develop", "progress",
	"award", "honor", "dedicated", "committed", "champion", "innovative",
}

var NegativeWords = []string{
	"alleged", "accused", "failed", "scandal", "corrupt", "charged", "controversy",
}

// Experience tier indicator sets, checked in priority order: a biography
// matching both high and medium indicators resolves to high.
var (
	HighExperienceIndicators     = []string{"decades", "veteran", "20 years", "25 years", "30 years"}
	MediumExperienceIndicators   = []string{"years", "served", "former", "elected", "incumbent"}
	EmergingExperienceIndicators = []string{"new", "first-time", "aspiring", "young"}
)

// StrengthCategory is a fixed strength bucket for biography text.
type StrengthCategory struct {
	Name     string
	Keywords []string
}

// Strengths is the ordered strength category table. Strength identification
// returns categories in this order, not by hit count.
var Strengths = []StrengthCategory{
	{Name: "Leadership", Keywords: []string{"led", "leader", "chair", "president", "head", "director"}},
	{Name: "Reform-oriented", Keywords: []string{"reform", "change", "transform", "modernize"}},
	{Name: "Community Focus", Keywords: []string{"community", "grassroots", "local", "volunteer", "outreach"}},
	{Name: "Policy Expert", Keywords: []string{"policy", "legislation", "law", "bill", "legislative"}},
	{Name: "Economic Knowledge", Keywords: []string{"economy", "economic", "business", "finance", "budget"}},
}
