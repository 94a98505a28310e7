package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateLegalRecord inserts a legal record and returns its ID
func (db *DB) CreateLegalRecord(ctx context.Context, rec *LegalRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO legal_records (candidate_id, case_number, description, verified)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		rec.CandidateID, rec.CaseNumber, rec.Description, rec.Verified,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create legal record: %w", err)
	}
	return id, nil
}

// VerifyLegalRecord marks a legal record as verified
func (db *DB) VerifyLegalRecord(ctx context.Context, recordID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE legal_records SET verified = TRUE WHERE id = $1`,
		recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to verify legal record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("legal record not found: %s", recordID)
	}
	return nil
}

// ListLegalRecords retrieves all legal records for a candidate
func (db *DB) ListLegalRecords(ctx context.Context, candidateID uuid.UUID) ([]LegalRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, COALESCE(case_number, ''), COALESCE(description, ''), verified, created_at
		 FROM legal_records WHERE candidate_id = $1 ORDER BY created_at`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal records: %w", err)
	}
	defer rows.Close()

	var records []LegalRecord
	for rows.Next() {
		var rec LegalRecord
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.CaseNumber, &rec.Description, &rec.Verified, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan legal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CountLegalRecords returns the total and verified legal record counts for a
// candidate. The scoring penalty uses the total; verified is exposed for
// transparency views.
func (db *DB) CountLegalRecords(ctx context.Context, candidateID uuid.UUID) (total, verified int, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE verified)
		 FROM legal_records WHERE candidate_id = $1`,
		candidateID,
	).Scan(&total, &verified)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count legal records: %w", err)
	}
	return total, verified, nil
}
