package scoring

import (
	"strings"

	"github.com/miguel/ballotwatch/internal/catalog"
	"github.com/miguel/ballotwatch/internal/types"
)

// Compatibility scoring constants.
const (
	compatibilityBase    = 50
	categoryHitPoints    = 5
	categoryMaxPoints    = 15
	literalMatchPoints   = 10
	verificationPoints   = 5
	verificationMaxBonus = 20
)

// ScoreCompatibility computes a 0-100 fit between a voter's preference list
// and a candidate's text plus verified-achievement count. Preferences are
// scored in caller order and matched ones are echoed back in that order.
//
// A preference that names a known policy category is scored by keyword hits;
// any other preference matches as a literal substring for a flat bonus.
// Unknown, non-matching preferences are silently ignored. A preference
// supplied twice is scored twice; dedup here would change published scores.
func ScoreCompatibility(preferences []string, candidate types.CandidateProfile, verifiedCount int) types.ScoreResult {
	combined := strings.ToLower(candidate.Biography + " " + candidate.Position + " " + candidate.Party)

	score := compatibilityBase
	matched := make([]string, 0, len(preferences))

	for _, pref := range preferences {
		lowered := strings.ToLower(pref)

		if cat, ok := catalog.FindTheme(lowered); ok {
			hits := countHits(combined, cat.Keywords)
			if hits > 0 {
				matched = append(matched, pref)
				score += min(categoryMaxPoints, hits*categoryHitPoints)
			}
			continue
		}

		if strings.Contains(combined, lowered) {
			matched = append(matched, pref)
			score += literalMatchPoints
		}
	}

	score += min(verificationMaxBonus, verifiedCount*verificationPoints)

	return types.ScoreResult{
		Score:             clampScore(score),
		MatchedCategories: matched,
	}
}

// clampScore bounds a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
