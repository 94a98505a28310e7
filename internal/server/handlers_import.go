package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/miguel/ballotwatch/internal/db"
	"github.com/miguel/ballotwatch/internal/ingestion"
	"github.com/miguel/ballotwatch/internal/schemas"
	"github.com/miguel/ballotwatch/internal/types"
)

// maxImportPayload bounds the bulk import request body (4 MiB).
const maxImportPayload = 4 << 20

// handleImportCandidates validates and loads a bulk candidate payload. The
// whole payload is schema-checked before any row is written, so a bad entry
// rejects the batch.
func (s *Server) handleImportCandidates(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportPayload))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateCandidateImport(string(body)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var entries []types.CreateCandidateRequest
	if err := json.Unmarshal(body, &entries); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	imported := make([]string, 0, len(entries))
	for _, entry := range entries {
		biography, err := ingestion.ExtractBiographyText(entry.Biography)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid biography for "+entry.Username+": "+err.Error())
			return
		}

		candidate := db.Candidate{
			Username:  entry.Username,
			FullName:  entry.FullName,
			Position:  entry.Position,
			Party:     entry.Party,
			Biography: biography,
		}

		id, err := s.store.CreateCandidate(r.Context(), &candidate)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		imported = append(imported, id.String())
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"imported": imported,
		"count":    len(imported),
	})
}
