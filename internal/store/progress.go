package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tpnguyen/vocadrill/internal/learn"
)

// LoadProgress returns the saved snapshot for a (user, library) pair,
// or nil if none has been saved yet.
func (s *Store) LoadProgress(ctx context.Context, userID, libraryID string) (*learn.SerializedState, error) {
	var blob string
	err := s.db.GetContext(ctx, &blob,
		`SELECT state FROM progress WHERE user_id = ? AND library_id = ?`,
		userID, libraryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress %s/%s: %w", userID, libraryID, err)
	}

	var snap learn.SerializedState
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return nil, fmt.Errorf("decode progress %s/%s: %w", userID, libraryID, err)
	}
	return &snap, nil
}

// SaveProgress upserts the snapshot for a (user, library) pair.
func (s *Store) SaveProgress(ctx context.Context, userID, libraryID string, snap learn.SerializedState) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode progress %s/%s: %w", userID, libraryID, err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO progress (user_id, library_id, state, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, library_id) DO UPDATE
		 SET state = excluded.state, updated_at = excluded.updated_at`,
		userID, libraryID, string(blob), time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("save progress %s/%s: %w", userID, libraryID, err)
	}
	return nil
}

// ResetProgress deletes the saved snapshot for a (user, library) pair.
// Deleting a snapshot that doesn't exist is not an error.
func (s *Store) ResetProgress(ctx context.Context, userID, libraryID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM progress WHERE user_id = ? AND library_id = ?`,
		userID, libraryID,
	); err != nil {
		return fmt.Errorf("reset progress %s/%s: %w", userID, libraryID, err)
	}
	return nil
}
