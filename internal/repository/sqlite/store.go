package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
)

// SnapshotRecord is the single blob row holding the serialized snapshot.
type SnapshotRecord struct {
	ID        uint      `gorm:"primarykey"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// Store is the local snapshot backend: one sqlite file, one blob row.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite file, creating its directory and schema
// as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, error) {
	var record SnapshotRecord
	err := s.db.WithContext(ctx).First(&record, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return snapshot.Snapshot{}, nil
	}
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(record.Payload, &snap); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := SnapshotRecord{ID: 1, Payload: payload}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
