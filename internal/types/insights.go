package types

// ExperienceTier classifies how seasoned a candidate appears from their
// biography text.
type ExperienceTier string

const (
	ExperienceHigh     ExperienceTier = "high"
	ExperienceMedium   ExperienceTier = "medium"
	ExperienceEmerging ExperienceTier = "emerging"
	ExperienceUnknown  ExperienceTier = "unknown"
)

// ScoreResult is the output of compatibility scoring: a 0-100 score and the
// matched preference categories in the voter's original order.
type ScoreResult struct {
	Score             int      `json:"score"`
	MatchedCategories []string `json:"matched_categories"`
}

// FocusArea pairs a policy theme with a 0-100 relevance derived from
// keyword hit counts.
type FocusArea struct {
	Area      string `json:"area"`
	Relevance int    `json:"relevance"`
}

// InsightBundle is the full structured output of running all text signal
// extractors plus external counters for one candidate. Counters is nil when
// the caller never fetched them.
type InsightBundle struct {
	Themes         []string           `json:"themes"`
	SentimentScore float64            `json:"sentiment_score"`
	ExperienceTier ExperienceTier     `json:"experience_tier"`
	KeyStrengths   []string           `json:"key_strengths"`
	FocusAreas     []FocusArea        `json:"focus_areas"`
	Counters       *CandidateCounters `json:"counters,omitempty"`
}

// Recommendation is one ranked entry produced for a voter's preference set.
type Recommendation struct {
	Candidate          CandidateProfile `json:"candidate"`
	CompatibilityScore int              `json:"compatibility_score"`
	MatchedCategories  []string         `json:"matched_categories"`
	Insights           InsightBundle    `json:"insights"`
	Reason             string           `json:"reason"`
}

// ComparisonResult holds the pairwise comparison of two candidates.
type ComparisonResult struct {
	ScoreA  int    `json:"score_a"`
	ScoreB  int    `json:"score_b"`
	Summary string `json:"summary"`
}

// SimilarCandidate pairs a candidate with a 0-100 theme-overlap similarity
// to a reference candidate.
type SimilarCandidate struct {
	Candidate       CandidateProfile `json:"candidate"`
	SimilarityScore int              `json:"similarity_score"`
	CommonThemes    []string         `json:"common_themes"`
}
