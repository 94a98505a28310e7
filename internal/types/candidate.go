// Package types provides type definitions for structured data used throughout the ballotwatch system.
package types

import "github.com/google/uuid"

// CandidateProfile is the read-only candidate view consumed by the scoring
// engine. Missing fields are empty strings; the engine is total over them.
type CandidateProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Position  string    `json:"position,omitempty"`
	Party     string    `json:"party,omitempty"`
	Biography string    `json:"biography,omitempty"`
}

// DisplayName returns the full name, falling back to the username handle.
func (c CandidateProfile) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Username
}

// PartyName returns the party, defaulting to Independent when unset.
func (c CandidateProfile) PartyName() string {
	if c.Party != "" {
		return c.Party
	}
	return "Independent"
}

// CandidateCounters holds the externally-sourced verification and
// legal-record counts for one candidate. The engine never computes these;
// callers fetch them from the store. A nil *CandidateCounters means the
// counters were never fetched, which is distinct from all-zero counts.
type CandidateCounters struct {
	VerifiedAchievements int `json:"verified_achievements"`
	PendingAchievements  int `json:"pending_achievements"`
	LegalRecordsTotal    int `json:"legal_records_total"`
	LegalRecordsVerified int `json:"legal_records_verified"`
}
