package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemes_KeywordsAreLowercase(t *testing.T) {
	for _, c := range Themes {
		assert.NotEmpty(t, c.Keywords, "category %s has no keywords", c.ID)
		for _, kw := range c.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw, "keyword %q in %s is not lowercase", kw, c.ID)
		}
	}
}

func TestThemes_DeclarationOrder(t *testing.T) {
	// Scoring uses declaration order as the tie-break key, so the table
	// order is part of the contract.
	ids := make([]string, 0, len(Themes))
	for _, c := range Themes {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"education", "healthcare", "economy", "environment",
		"security", "infrastructure", "social_welfare", "governance",
	}, ids)
}

func TestFindTheme(t *testing.T) {
	c, ok := FindTheme("education")
	assert.True(t, ok)
	assert.Equal(t, "Education", c.Title)

	c, ok = FindTheme("SOCIAL_WELFARE")
	assert.True(t, ok)
	assert.Equal(t, "Social Welfare", c.Title)

	_, ok = FindTheme("sports")
	assert.False(t, ok)
}

func TestSentimentLexiconSizes(t *testing.T) {
	assert.Len(t, PositiveWords, 13)
	assert.Len(t, NegativeWords, 7)
}

func TestStrengths_FixedOrder(t *testing.T) {
	names := make([]string, 0, len(Strengths))
	for _, s := range Strengths {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Leadership", "Reform-oriented", "Community Focus",
		"Policy Expert", "Economic Knowledge",
	}, names)
}
