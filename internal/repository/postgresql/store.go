package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/database"
)

// Store is the remote snapshot backend: one jsonb blob row per venue.
// Row-level SQL is deliberately absent; the persistence model is a
// whole-collection snapshot, not a relational mapping.
type Store struct {
	db *database.DB
}

func NewStore(ctx context.Context, db *database.DB) (*Store, error) {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INT PRIMARY KEY,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM snapshots WHERE id = 1`).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return snapshot.Snapshot{}, nil
	}
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, payload, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, payload); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
