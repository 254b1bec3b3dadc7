package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/storepro/storefront/internal/utils"
)

// Persisted local state lives in store_state as independently keyed JSON
// blobs, one row per blob:
//
//	CREATE TABLE store_state (
//	    key        TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
const (
	CartStateKey = "cart-storage"
	AuthStateKey = "auth-storage"
)

type SnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type snapshotRepository struct {
	DB *sql.DB
}

func NewSnapshotRepo(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{DB: db}
}

// Load returns sql.ErrNoRows untouched when the blob was never written, so
// callers can start from an empty state on first use.
func (r *snapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT data
		FROM store_state
		WHERE key = $1
	`

	var data []byte

	err := r.DB.QueryRowContext(dbCtx, query, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return data, nil
}

func (r *snapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO store_state (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := r.DB.ExecContext(dbCtx, query, key, data); err != nil {
		return fmt.Errorf("failed to save state snapshot: %w", err)
	}

	return nil
}
