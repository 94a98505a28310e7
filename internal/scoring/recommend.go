package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miguel/ballotwatch/internal/types"
)

// Default result limits when the caller passes limit <= 0.
const (
	DefaultRecommendLimit = 5
	DefaultSimilarLimit   = 3
)

// RankedCandidate pairs a candidate with its externally-fetched counters.
// Counters may be nil when the caller never fetched them.
type RankedCandidate struct {
	Profile  types.CandidateProfile
	Counters *types.CandidateCounters
}

// Recommend ranks candidates for a voter's preference set, optionally
// filtered to one position, sorted descending by compatibility score and
// truncated to limit. The sort is stable: candidates tied on score keep
// their order in the input slice, so the caller's fetch order is the
// tie-break rule.
func Recommend(preferences []string, candidates []RankedCandidate, position string, limit int) []types.Recommendation {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	recommendations := make([]types.Recommendation, 0, len(candidates))
	for _, rc := range candidates {
		if position != "" && rc.Profile.Position != position {
			continue
		}

		verified := 0
		if rc.Counters != nil {
			verified = rc.Counters.VerifiedAchievements
		}

		result := ScoreCompatibility(preferences, rc.Profile, verified)
		insights := BuildInsights(rc.Profile, rc.Counters)

		recommendations = append(recommendations, types.Recommendation{
			Candidate:          rc.Profile,
			CompatibilityScore: result.Score,
			MatchedCategories:  result.MatchedCategories,
			Insights:           insights,
			Reason:             recommendationReason(result.MatchedCategories, insights),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].CompatibilityScore > recommendations[j].CompatibilityScore
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}

// recommendationReason composes the human-readable reason for one
// recommendation, sentences joined with ". " and a trailing period.
func recommendationReason(matched []string, insights types.InsightBundle) string {
	var parts []string

	if len(matched) > 0 {
		shown := matched
		if len(shown) > 2 {
			shown = shown[:2]
		}
		parts = append(parts, fmt.Sprintf("Aligns with your interest in %s", strings.Join(shown, ", ")))
	}

	if insights.Counters != nil && insights.Counters.VerifiedAchievements > 0 {
		parts = append(parts, fmt.Sprintf("%d verified achievements", insights.Counters.VerifiedAchievements))
	}

	if len(insights.KeyStrengths) > 0 {
		parts = append(parts, fmt.Sprintf("Known for %s", insights.KeyStrengths[0]))
	}

	if len(parts) == 0 {
		return "Candidate profile matches your criteria."
	}
	return strings.Join(parts, ". ") + "."
}

// SimilarCandidates ranks candidates by theme overlap with a reference
// candidate: |common| / max(|reference themes|, 1) * 100, plus 20 when the
// position matches exactly, clamped to 100 with integer truncation. The
// reference itself is excluded. Sorted descending, truncated to limit.
func SimilarCandidates(reference types.CandidateProfile, candidates []types.CandidateProfile, limit int) []types.SimilarCandidate {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	referenceThemes := ExtractThemes(reference.Biography)
	denominator := len(referenceThemes)
	if denominator < 1 {
		denominator = 1
	}

	similar := make([]types.SimilarCandidate, 0, len(candidates))
	for _, other := range candidates {
		if other.ID == reference.ID {
			continue
		}

		common := intersectThemes(referenceThemes, ExtractThemes(other.Biography))
		score := len(common) * 100 / denominator
		if other.Position == reference.Position {
			score += 20
		}
		if score > 100 {
			score = 100
		}

		similar = append(similar, types.SimilarCandidate{
			Candidate:       other,
			SimilarityScore: score,
			CommonThemes:    common,
		})
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].SimilarityScore > similar[j].SimilarityScore
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}
