package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/miguel/ballotwatch/internal/types"
)

// candidateColumns is the select list shared by candidate queries.
const candidateColumns = `id, username, COALESCE(full_name, ''), COALESCE(position, ''),
	COALESCE(party, ''), COALESCE(biography, ''), role, created_at`

// CreateCandidate inserts a candidate record and returns its ID
func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) (uuid.UUID, error) {
	role := c.Role
	if role == "" {
		role = "politician"
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (username, full_name, position, party, biography, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Username, c.FullName, c.Position, c.Party, c.Biography, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID; returns nil when not found
func (db *DB) GetCandidate(ctx context.Context, candidateID uuid.UUID) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`,
		candidateID,
	).Scan(&c.ID, &c.Username, &c.FullName, &c.Position, &c.Party, &c.Biography, &c.Role, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// ListPoliticians retrieves all candidates with role 'politician' in a
// stable order. The order matters: recommendation ranking breaks score ties
// by fetch order.
func (db *DB) ListPoliticians(ctx context.Context) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 WHERE role = 'politician'
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list politicians: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Username, &c.FullName, &c.Position, &c.Party, &c.Biography, &c.Role, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// ListCandidatesByPosition retrieves politicians seeking one office, in the
// same stable order as ListPoliticians
func (db *DB) ListCandidatesByPosition(ctx context.Context, position string) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 WHERE role = 'politician' AND position = $1
		 ORDER BY created_at, id`,
		position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates by position: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Username, &c.FullName, &c.Position, &c.Party, &c.Biography, &c.Role, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// UpdateCandidate updates mutable candidate fields
func (db *DB) UpdateCandidate(ctx context.Context, c *Candidate) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE candidates SET username = $1, full_name = $2, position = $3, party = $4, biography = $5
		 WHERE id = $6`,
		c.Username, c.FullName, c.Position, c.Party, c.Biography, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}

// DeleteCandidate deletes a candidate and its records (via cascade)
func (db *DB) DeleteCandidate(ctx context.Context, candidateID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// Profile converts a stored candidate into the engine's read-only view.
func (c *Candidate) Profile() types.CandidateProfile {
	return types.CandidateProfile{
		ID:        c.ID,
		Username:  c.Username,
		FullName:  c.FullName,
		Position:  c.Position,
		Party:     c.Party,
		Biography: c.Biography,
	}
}
