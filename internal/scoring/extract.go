// Package scoring implements the deterministic candidate scoring and
// recommendation engine. Every operation is a pure function of its arguments
// plus the static tables in the catalog package: no I/O, no retained state,
// safe for concurrent callers.
//
// Keyword matching is case-insensitive and substring-based throughout (the
// keyword "law" matches inside "outlawed"). That is documented behavior
// callers depend on, not something to tighten to word boundaries.
package scoring

import (
	"sort"
	"strings"

	"github.com/miguel/ballotwatch/internal/catalog"
	"github.com/miguel/ballotwatch/internal/types"
)

// countHits sums substring occurrences of every keyword in text. A keyword
// appearing twice counts twice. text must already be lowercased.
func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		hits += strings.Count(text, kw)
	}
	return hits
}

// containsAny reports whether any keyword occurs in text. text must already
// be lowercased.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ExtractThemes returns the titleized policy themes detected in text,
// sorted by keyword hit count descending. Categories tied on hit count keep
// catalog declaration order.
func ExtractThemes(text string) []string {
	lowered := strings.ToLower(text)

	type themeHits struct {
		title string
		hits  int
	}
	detected := make([]themeHits, 0, len(catalog.Themes))
	for _, c := range catalog.Themes {
		if hits := countHits(lowered, c.Keywords); hits > 0 {
			detected = append(detected, themeHits{title: c.Title, hits: hits})
		}
	}

	// Stable sort preserves declaration order for equal hit counts.
	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].hits > detected[j].hits
	})

	themes := make([]string, 0, len(detected))
	for _, d := range detected {
		themes = append(themes, d.title)
	}
	return themes
}

// AnalyzeSentiment returns (positive - negative) / (positive + negative)
// over the fixed sentiment lexicons, in [-1, 1]. Returns exactly 0.0 when
// neither lexicon matches.
func AnalyzeSentiment(text string) float64 {
	lowered := strings.ToLower(text)

	positive := countHits(lowered, catalog.PositiveWords)
	negative := countHits(lowered, catalog.NegativeWords)

	if positive+negative == 0 {
		return 0.0
	}
	return float64(positive-negative) / float64(positive+negative)
}

// AssessExperience classifies text into an experience tier. Indicator sets
// are checked in priority order: high, then medium, then emerging. A
// biography matching both high and medium indicators resolves to high.
func AssessExperience(text string) types.ExperienceTier {
	lowered := strings.ToLower(text)

	switch {
	case containsAny(lowered, catalog.HighExperienceIndicators):
		return types.ExperienceHigh
	case containsAny(lowered, catalog.MediumExperienceIndicators):
		return types.ExperienceMedium
	case containsAny(lowered, catalog.EmergingExperienceIndicators):
		return types.ExperienceEmerging
	default:
		return types.ExperienceUnknown
	}
}

// IdentifyStrengths returns up to the first four strength categories that
// have any keyword hit in text. Order is the fixed declaration order of the
// strength table, not hit count.
func IdentifyStrengths(text string) []string {
	lowered := strings.ToLower(text)

	strengths := make([]string, 0, 4)
	for _, s := range catalog.Strengths {
		if containsAny(lowered, s.Keywords) {
			strengths = append(strengths, s.Name)
			if len(strengths) == 4 {
				break
			}
		}
	}
	return strengths
}

// focusRelevancePerHit is the relevance contribution of one keyword hit.
const focusRelevancePerHit = 25

// FocusAreas returns the top five policy themes by relevance, where
// relevance is min(100, hitCount * 25). Ties keep catalog declaration order.
func FocusAreas(text string) []types.FocusArea {
	lowered := strings.ToLower(text)

	areas := make([]types.FocusArea, 0, len(catalog.Themes))
	for _, c := range catalog.Themes {
		hits := countHits(lowered, c.Keywords)
		if hits == 0 {
			continue
		}
		relevance := hits * focusRelevancePerHit
		if relevance > 100 {
			relevance = 100
		}
		areas = append(areas, types.FocusArea{Area: c.Title, Relevance: relevance})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Relevance > areas[j].Relevance
	})

	if len(areas) > 5 {
		areas = areas[:5]
	}
	return areas
}
