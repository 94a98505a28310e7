package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCandidateProfile(t *testing.T) {
	candidate := Candidate{
		ID:        uuid.New(),
		Username:  "areyes",
		FullName:  "Ana Reyes",
		Position:  "Senator",
		Party:     "Progressive",
		Biography: "Dedicated to education.",
		Role:      "politician",
	}

	profile := candidate.Profile()
	assert.Equal(t, candidate.ID, profile.ID)
	assert.Equal(t, "areyes", profile.Username)
	assert.Equal(t, "Ana Reyes", profile.FullName)
	assert.Equal(t, "Senator", profile.Position)
	assert.Equal(t, "Progressive", profile.Party)
	assert.Equal(t, "Dedicated to education.", profile.Biography)
}

func TestCandidateProfile_EmptyOptionalFields(t *testing.T) {
	candidate := Candidate{
		ID:       uuid.New(),
		Username: "jcruz",
	}

	profile := candidate.Profile()
	assert.Equal(t, "jcruz", profile.Username)
	assert.Empty(t, profile.FullName)
	assert.Empty(t, profile.Position)
	assert.Empty(t, profile.Biography)
}
