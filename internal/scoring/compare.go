package scoring

import (
	"fmt"
	"strings"

	"github.com/miguel/ballotwatch/internal/types"
)

// ComparisonInput pairs a candidate profile with its precomputed insights.
type ComparisonInput struct {
	Profile  types.CandidateProfile
	Insights types.InsightBundle
}

// similarProfileMargin is the overall-score gap below which two candidates
// read as comparable rather than one being stronger.
const similarProfileMargin = 10

// Compare produces overall scores for both candidates and a prose summary.
// Summary sentences are composed with single spaces, each appended only when
// its condition holds.
func Compare(a, b ComparisonInput) types.ComparisonResult {
	scoreA := OverallScore(a.Insights)
	scoreB := OverallScore(b.Insights)

	var sentences []string

	diff := scoreA - scoreB
	if diff < 0 {
		diff = -diff
	}
	if diff < similarProfileMargin {
		sentences = append(sentences, "Both candidates have similar overall profiles.")
	} else if scoreA > scoreB {
		sentences = append(sentences, fmt.Sprintf("%s has a stronger verified profile overall.", a.Profile.DisplayName()))
	} else {
		sentences = append(sentences, fmt.Sprintf("%s has a stronger verified profile overall.", b.Profile.DisplayName()))
	}

	common := intersectThemes(a.Insights.Themes, b.Insights.Themes)
	if len(common) > 0 {
		shared := common
		if len(shared) > 2 {
			shared = shared[:2]
		}
		sentences = append(sentences, fmt.Sprintf("Both focus on: %s.", strings.Join(shared, ", ")))
	}

	if unique := subtractThemes(a.Insights.Themes, b.Insights.Themes); len(unique) > 0 {
		sentences = append(sentences, fmt.Sprintf("%s uniquely emphasizes %s.", a.Profile.DisplayName(), unique[0]))
	}
	if unique := subtractThemes(b.Insights.Themes, a.Insights.Themes); len(unique) > 0 {
		sentences = append(sentences, fmt.Sprintf("%s uniquely emphasizes %s.", b.Profile.DisplayName(), unique[0]))
	}

	return types.ComparisonResult{
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		Summary: strings.Join(sentences, " "),
	}
}

// intersectThemes returns themes present in both lists, preserving the
// order of the first list.
func intersectThemes(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	var common []string
	for _, t := range a {
		if set[t] {
			common = append(common, t)
		}
	}
	return common
}

// subtractThemes returns themes in a that are absent from b, preserving
// a's order.
func subtractThemes(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	var unique []string
	for _, t := range a {
		if !set[t] {
			unique = append(unique, t)
		}
	}
	return unique
}
