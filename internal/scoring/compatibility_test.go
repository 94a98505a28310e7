package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/miguel/ballotwatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func candidateWithBio(bio string) types.CandidateProfile {
	return types.CandidateProfile{
		ID:        uuid.New(),
		Username:  "jdelacruz",
		FullName:  "Juan dela Cruz",
		Biography: bio,
	}
}

func TestScoreCompatibility_MatchingPreferences(t *testing.T) {
	candidate := candidateWithBio("I focus on education, schools, healthcare, and hospitals.")

	result := ScoreCompatibility([]string{"education", "healthcare"}, candidate, 0)

	assert.Greater(t, result.Score, 60)
	assert.Contains(t, result.MatchedCategories, "education")
	assert.Contains(t, result.MatchedCategories, "healthcare")
}

func TestScoreCompatibility_NoMatches(t *testing.T) {
	candidate := candidateWithBio("I love sports and entertainment.")

	result := ScoreCompatibility([]string{"education", "healthcare"}, candidate, 0)

	assert.LessOrEqual(t, result.Score, 60)
	assert.Empty(t, result.MatchedCategories)
}

func TestScoreCompatibility_EmptyPreferences(t *testing.T) {
	candidate := candidateWithBio("Anything at all.")

	result := ScoreCompatibility(nil, candidate, 2)

	// Base 50 plus verification bonus only.
	assert.Equal(t, 60, result.Score)
	assert.Empty(t, result.MatchedCategories)
}

func TestScoreCompatibility_CategoryBonusCapped(t *testing.T) {
	// Five education keyword hits would be 25 points; capped at 15.
	candidate := candidateWithBio("school school school school school")

	result := ScoreCompatibility([]string{"education"}, candidate, 0)

	assert.Equal(t, 65, result.Score)
}

func TestScoreCompatibility_LiteralSubstringPreference(t *testing.T) {
	candidate := candidateWithBio("A lifelong advocate of animal rights.")

	result := ScoreCompatibility([]string{"animal rights"}, candidate, 0)

	assert.Equal(t, 60, result.Score)
	assert.Equal(t, []string{"animal rights"}, result.MatchedCategories)
}

func TestScoreCompatibility_UnknownPreferenceIgnored(t *testing.T) {
	candidate := candidateWithBio("Better schools for all.")

	result := ScoreCompatibility([]string{"education", "basket weaving"}, candidate, 0)

	assert.Equal(t, []string{"education"}, result.MatchedCategories)
}

func TestScoreCompatibility_DuplicatePreferenceScoredTwice(t *testing.T) {
	// Duplicates are not deduplicated; each occurrence scores and matches.
	// Pinned as published behavior.
	candidate := candidateWithBio("Better schools for all.")

	single := ScoreCompatibility([]string{"education"}, candidate, 0)
	double := ScoreCompatibility([]string{"education", "education"}, candidate, 0)

	assert.Equal(t, 2*(single.Score-compatibilityBase)+compatibilityBase, double.Score)
	assert.Equal(t, []string{"education", "education"}, double.MatchedCategories)
}

func TestScoreCompatibility_MatchesPositionAndParty(t *testing.T) {
	candidate := types.CandidateProfile{
		Username: "msantos",
		Position: "School Board Trustee",
		Party:    "Green Future",
	}

	result := ScoreCompatibility([]string{"education", "environment"}, candidate, 0)

	// "school" hits via the position, "green" via the party.
	assert.Equal(t, []string{"education", "environment"}, result.MatchedCategories)
	assert.Equal(t, 60, result.Score)
}

func TestScoreCompatibility_VerificationBonusCapped(t *testing.T) {
	candidate := candidateWithBio("")

	result := ScoreCompatibility(nil, candidate, 100)

	assert.Equal(t, 70, result.Score)
}

func TestScoreCompatibility_ClampedToHundred(t *testing.T) {
	bio := "school hospital jobs climate police roads welfare transparency " +
		"school hospital jobs climate police roads welfare transparency " +
		"school hospital jobs climate police roads welfare transparency"
	candidate := candidateWithBio(bio)
	prefs := []string{"education", "healthcare", "economy", "environment", "security", "infrastructure", "social_welfare", "governance"}

	result := ScoreCompatibility(prefs, candidate, 10)

	assert.Equal(t, 100, result.Score)
	assert.Len(t, result.MatchedCategories, 8)
}

func TestScoreCompatibility_Deterministic(t *testing.T) {
	candidate := candidateWithBio("I focus on education, schools, healthcare, and hospitals.")
	prefs := []string{"education", "healthcare"}

	first := ScoreCompatibility(prefs, candidate, 3)
	second := ScoreCompatibility(prefs, candidate, 3)

	assert.Equal(t, first, second)
}

func TestScoreCompatibility_CaseInsensitivePreferences(t *testing.T) {
	candidate := candidateWithBio("Better schools for all.")

	result := ScoreCompatibility([]string{"EDUCATION"}, candidate, 0)

	assert.Equal(t, []string{"EDUCATION"}, result.MatchedCategories)
	assert.Equal(t, 55, result.Score)
}
