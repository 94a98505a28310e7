package scoring

import (
	"math"

	"github.com/miguel/ballotwatch/internal/types"
)

// Overall score constants.
const (
	overallBase            = 50
	sentimentRange         = 20
	achievementPoints      = 5
	achievementMaxBonus    = 20
	highExperienceBonus    = 15
	mediumExperienceBonus  = 10
	legalRecordPenalty     = 5
	legalRecordMaxPenalty  = 15
)

// OverallScore folds an insight bundle into a single 0-100 trust score.
// Sentiment contributes up to +/-20, verified achievements up to +20,
// experience tier up to +15. Legal records deduct up to 15 points on the
// total count regardless of verification status; penalizing unverified
// filings the same as verified ones is a deliberate conservative choice.
// Absent counters contribute nothing.
func OverallScore(insights types.InsightBundle) int {
	score := overallBase

	score += int(math.Round(insights.SentimentScore * sentimentRange))

	if insights.Counters != nil {
		score += min(achievementMaxBonus, insights.Counters.VerifiedAchievements*achievementPoints)
	}

	switch insights.ExperienceTier {
	case types.ExperienceHigh:
		score += highExperienceBonus
	case types.ExperienceMedium:
		score += mediumExperienceBonus
	}

	if insights.Counters != nil {
		score -= min(legalRecordMaxPenalty, insights.Counters.LegalRecordsTotal*legalRecordPenalty)
	}

	return clampScore(score)
}
