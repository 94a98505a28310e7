package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetPreferences retrieves a voter's preference set; returns nil when the
// voter has never saved one. The stored JSONB array keeps the order the
// voter chose, and scoring iterates preferences in that order.
func (db *DB) GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferenceSet, error) {
	var set PreferenceSet
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, preferences, updated_at
		 FROM voter_preferences WHERE user_id = $1`,
		userID,
	).Scan(&set.UserID, &set.Preferences, &set.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &set, nil
}

// SetPreferences upserts a voter's preference set, replacing any previous list
func (db *DB) SetPreferences(ctx context.Context, userID uuid.UUID, preferences []string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO voter_preferences (user_id, preferences, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET preferences = $2, updated_at = NOW()`,
		userID, preferences,
	)
	if err != nil {
		return fmt.Errorf("failed to set preferences: %w", err)
	}
	return nil
}

// DeletePreferences removes a voter's stored preference set
func (db *DB) DeletePreferences(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM voter_preferences WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}
