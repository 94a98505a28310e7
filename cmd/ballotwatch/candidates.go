package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/miguel/ballotwatch/internal/ingestion"
	"github.com/miguel/ballotwatch/internal/types"
)

// loadCandidateProfiles reads a JSON array of candidate profiles from a file.
// Biographies are stripped of markup the same way API ingestion does it, so
// offline scoring sees the same text the server would.
func loadCandidateProfiles(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var profiles []types.CandidateProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}

	for i := range profiles {
		biography, err := ingestion.ExtractBiographyText(profiles[i].Biography)
		if err != nil {
			return nil, fmt.Errorf("invalid biography for %s: %w", profiles[i].Username, err)
		}
		profiles[i].Biography = biography
	}

	return profiles, nil
}

// findProfile locates a candidate by username in a loaded profile list.
func findProfile(profiles []types.CandidateProfile, username string) (types.CandidateProfile, error) {
	for _, p := range profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return types.CandidateProfile{}, fmt.Errorf("candidate not found in file: %s", username)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
