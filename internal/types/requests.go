package types

import "github.com/go-playground/validator/v10"

// RecommendRequest asks for ranked candidate recommendations for a voter's
// preference set. Position optionally restricts results to one office.
type RecommendRequest struct {
	Preferences []string `json:"preferences" validate:"required"`
	Position    string   `json:"position,omitempty"`
	Limit       int      `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// CompareRequest asks for a pairwise comparison of two candidates.
type CompareRequest struct {
	CandidateA string `json:"candidate_a" validate:"required,uuid"`
	CandidateB string `json:"candidate_b" validate:"required,uuid"`
}

// ScoreRequest asks for an ad-hoc compatibility score of one candidate
// against a preference set.
type ScoreRequest struct {
	CandidateID string   `json:"candidate_id" validate:"required,uuid"`
	Preferences []string `json:"preferences" validate:"required"`
}

// CreateCandidateRequest creates or updates a candidate record. Biography
// may be plain text or pasted HTML; the server strips markup on ingest.
type CreateCandidateRequest struct {
	Username  string `json:"username" validate:"required,min=1"`
	FullName  string `json:"full_name,omitempty"`
	Position  string `json:"position,omitempty"`
	Party     string `json:"party,omitempty"`
	Biography string `json:"biography,omitempty"`
}

// PreferenceSetRequest replaces a voter's stored preference list. Order is
// preserved; it is the iteration order of compatibility scoring.
type PreferenceSetRequest struct {
	Preferences []string `json:"preferences" validate:"required"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PreferenceSetRequest using the validator.
func (r *PreferenceSetRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
