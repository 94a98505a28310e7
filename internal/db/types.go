package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account (voter, politician, or admin)
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Candidate represents a candidate record as stored
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Position  string    `json:"position,omitempty"`
	Party     string    `json:"party,omitempty"`
	Biography string    `json:"biography,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AchievementRecord represents one claimed achievement and its
// verification status ("verified" or "pending")
type AchievementRecord struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LegalRecord represents one legal filing attached to a candidate
type LegalRecord struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CaseNumber  string    `json:"case_number,omitempty"`
	Description string    `json:"description,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// PreferenceSet is a voter's stored preference list. Order is preserved
// (JSONB array) because scoring iterates it in order.
type PreferenceSet struct {
	UserID      uuid.UUID `json:"user_id"`
	Preferences []string  `json:"preferences"`
	UpdatedAt   time.Time `json:"updated_at"`
}
