package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateAchievementRecord inserts a claimed achievement and returns its ID.
// Status defaults to 'pending'; verification flips it to 'verified'.
func (db *DB) CreateAchievementRecord(ctx context.Context, rec *AchievementRecord) (uuid.UUID, error) {
	status := rec.Status
	if status == "" {
		status = "pending"
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO achievement_records (candidate_id, title, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		rec.CandidateID, rec.Title, rec.Description, status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create achievement record: %w", err)
	}
	return id, nil
}

// VerifyAchievementRecord marks an achievement as verified
func (db *DB) VerifyAchievementRecord(ctx context.Context, recordID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE achievement_records SET status = 'verified' WHERE id = $1`,
		recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to verify achievement record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("achievement record not found: %s", recordID)
	}
	return nil
}

// ListAchievementRecords retrieves all achievement records for a candidate
func (db *DB) ListAchievementRecords(ctx context.Context, candidateID uuid.UUID) ([]AchievementRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, title, COALESCE(description, ''), status, created_at
		 FROM achievement_records WHERE candidate_id = $1 ORDER BY created_at`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievement records: %w", err)
	}
	defer rows.Close()

	var records []AchievementRecord
	for rows.Next() {
		var rec AchievementRecord
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.Title, &rec.Description, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CountAchievements returns the verified and pending achievement counts for
// a candidate. A candidate with no rows yields zero counts, which callers
// must distinguish from counters that were never fetched.
func (db *DB) CountAchievements(ctx context.Context, candidateID uuid.UUID) (verified, pending int, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE status = 'verified'),
		        COUNT(*) FILTER (WHERE status = 'pending')
		 FROM achievement_records WHERE candidate_id = $1`,
		candidateID,
	).Scan(&verified, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return verified, pending, nil
}
