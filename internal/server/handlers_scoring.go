package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/miguel/ballotwatch/internal/db"
	"github.com/miguel/ballotwatch/internal/scoring"
	"github.com/miguel/ballotwatch/internal/types"
)

// counterFetchConcurrency bounds parallel count queries when ranking the
// whole candidate pool.
const counterFetchConcurrency = 8

// fetchCounters loads achievement and legal-record counts for one candidate.
// The two count queries run concurrently.
func (s *Server) fetchCounters(ctx context.Context, candidateID uuid.UUID) (*types.CandidateCounters, error) {
	var counters types.CandidateCounters

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		verified, pending, err := s.store.CountAchievements(ctx, candidateID)
		if err != nil {
			return err
		}
		counters.VerifiedAchievements = verified
		counters.PendingAchievements = pending
		return nil
	})
	g.Go(func() error {
		total, verified, err := s.store.CountLegalRecords(ctx, candidateID)
		if err != nil {
			return err
		}
		counters.LegalRecordsTotal = total
		counters.LegalRecordsVerified = verified
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &counters, nil
}

// fetchRankedCandidates loads the full politician pool with counters,
// preserving the store's stable order. Counter fetches run concurrently but
// results land by index, so ranking tie-breaks stay deterministic.
func (s *Server) fetchRankedCandidates(ctx context.Context, candidates []db.Candidate) ([]scoring.RankedCandidate, error) {
	ranked := make([]scoring.RankedCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(counterFetchConcurrency)
	for i := range candidates {
		g.Go(func() error {
			counters, err := s.fetchCounters(ctx, candidates[i].ID)
			if err != nil {
				return err
			}
			ranked[i] = scoring.RankedCandidate{
				Profile:  candidates[i].Profile(),
				Counters: counters,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ranked, nil
}

// handleRecommendations ranks the candidate pool for a preference set.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidates, err := s.store.ListPoliticians(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked, err := s.fetchRankedCandidates(r.Context(), candidates)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	recommendations := scoring.Recommend(req.Preferences, ranked, req.Position, req.Limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// handleCompare runs a pairwise comparison of two candidates.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	inputA, err := s.comparisonInput(r.Context(), uuid.MustParse(req.CandidateA))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	inputB, err := s.comparisonInput(r.Context(), uuid.MustParse(req.CandidateB))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := scoring.Compare(*inputA, *inputB)
	s.jsonResponse(w, http.StatusOK, result)
}

// comparisonInput loads one candidate with counters and builds its insights.
func (s *Server) comparisonInput(ctx context.Context, candidateID uuid.UUID) (*scoring.ComparisonInput, error) {
	candidate, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateID: candidateID}
	}

	counters, err := s.fetchCounters(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	profile := candidate.Profile()
	return &scoring.ComparisonInput{
		Profile:  profile,
		Insights: scoring.BuildInsights(profile, counters),
	}, nil
}

// handleScore computes an ad-hoc compatibility score for one candidate.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidateID := uuid.MustParse(req.CandidateID)
	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	verified, _, err := s.store.CountAchievements(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := scoring.ScoreCompatibility(req.Preferences, candidate.Profile(), verified)
	s.jsonResponse(w, http.StatusOK, result)
}
