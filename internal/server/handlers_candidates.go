package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/miguel/ballotwatch/internal/db"
	"github.com/miguel/ballotwatch/internal/ingestion"
	"github.com/miguel/ballotwatch/internal/scoring"
	"github.com/miguel/ballotwatch/internal/types"
)

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	biography, err := ingestion.ExtractBiographyText(req.Biography)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid biography: "+err.Error())
		return
	}

	candidate := db.Candidate{
		Username:  req.Username,
		FullName:  req.FullName,
		Position:  req.Position,
		Party:     req.Party,
		Biography: biography,
	}

	id, err := s.store.CreateCandidate(r.Context(), &candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	var (
		candidates []db.Candidate
		err        error
	)
	if position := r.URL.Query().Get("position"); position != "" {
		candidates, err = s.store.ListCandidatesByPosition(r.Context(), position)
	} else {
		candidates, err = s.store.ListPoliticians(r.Context())
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	biography, err := ingestion.ExtractBiographyText(req.Biography)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid biography: "+err.Error())
		return
	}

	candidate := db.Candidate{
		ID:        candidateID,
		Username:  req.Username,
		FullName:  req.FullName,
		Position:  req.Position,
		Party:     req.Party,
		Biography: biography,
	}

	if err := s.store.UpdateCandidate(r.Context(), &candidate); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := s.store.DeleteCandidate(r.Context(), candidateID); err != nil {
		if err.Error() == "candidate not found: "+candidateID.String() {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleCandidateInsights returns the full insight bundle for one candidate,
// including verification and legal-record counters.
func (s *Server) handleCandidateInsights(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	counters, err := s.fetchCounters(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	insights := scoring.BuildInsights(candidate.Profile(), counters)
	s.jsonResponse(w, http.StatusOK, insights)
}

// handleSimilarCandidates returns candidates with overlapping themes.
func (s *Server) handleSimilarCandidates(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	reference, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if reference == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	others, err := s.store.ListPoliticians(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	profiles := make([]types.CandidateProfile, 0, len(others))
	for i := range others {
		profiles = append(profiles, others[i].Profile())
	}

	similar := scoring.SimilarCandidates(reference.Profile(), profiles, limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"similar": similar,
		"count":   len(similar),
	})
}

// ---------------------------------------------------------------------
// Achievement Record Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	records, err := s.store.ListAchievementRecords(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"achievements": records,
		"count":        len(records),
	})
}

func (s *Server) handleCreateAchievement(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req db.AchievementRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}
	req.CandidateID = candidateID

	id, err := s.store.CreateAchievementRecord(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleVerifyAchievement(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	recordID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	if err := s.store.VerifyAchievementRecord(r.Context(), recordID); err != nil {
		if err.Error() == "achievement record not found: "+recordID.String() {
			s.errorResponse(w, http.StatusNotFound, "Achievement record not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "verified"})
}

// ---------------------------------------------------------------------
// Legal Record Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListLegalRecords(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	records, err := s.store.ListLegalRecords(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"legal_records": records,
		"count":         len(records),
	})
}

func (s *Server) handleCreateLegalRecord(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req db.LegalRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.CandidateID = candidateID
	// New records always start unverified regardless of the payload
	req.Verified = false

	id, err := s.store.CreateLegalRecord(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleVerifyLegalRecord(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	recordID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	if err := s.store.VerifyLegalRecord(r.Context(), recordID); err != nil {
		if err.Error() == "legal record not found: "+recordID.String() {
			s.errorResponse(w, http.StatusNotFound, "Legal record not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "verified"})
}
