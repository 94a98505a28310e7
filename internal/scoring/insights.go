package scoring

import "github.com/miguel/ballotwatch/internal/types"

// BuildInsights runs all text signal extractors against the candidate's
// biography and attaches external counters when supplied. counters == nil
// means the caller never fetched them; the bundle then carries no counters
// at all, which downstream scoring treats differently from zero counts.
func BuildInsights(candidate types.CandidateProfile, counters *types.CandidateCounters) types.InsightBundle {
	bundle := types.InsightBundle{
		Themes:         ExtractThemes(candidate.Biography),
		SentimentScore: AnalyzeSentiment(candidate.Biography),
		ExperienceTier: AssessExperience(candidate.Biography),
		KeyStrengths:   IdentifyStrengths(candidate.Biography),
		FocusAreas:     FocusAreas(candidate.Biography),
	}

	if counters != nil {
		copied := *counters
		bundle.Counters = &copied
	}

	return bundle
}
