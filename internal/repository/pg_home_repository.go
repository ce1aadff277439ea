package repository

import (
	"context"
	"errors"

	"github.com/despacho/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeRepository defines the persistence interface for landing-page content.
type HomeRepository interface {
	// Get returns the newest home configuration, or ErrNotFound when the
	// site has none yet.
	Get(ctx context.Context) (*model.HomeConfig, error)
}

// PgHomeRepository is the PostgreSQL implementation of HomeRepository.
type PgHomeRepository struct {
	pool *pgxpool.Pool
}

// NewPgHomeRepository creates a PgHomeRepository backed by the given pool.
func NewPgHomeRepository(pool *pgxpool.Pool) *PgHomeRepository {
	return &PgHomeRepository{pool: pool}
}

var _ HomeRepository = (*PgHomeRepository)(nil)

func (r *PgHomeRepository) Get(ctx context.Context) (*model.HomeConfig, error) {
	var c model.HomeConfig
	err := r.pool.QueryRow(ctx,
		`SELECT id, video_file, video_url, updated_at
		 FROM home_config
		 ORDER BY updated_at DESC
		 LIMIT 1`,
	).Scan(&c.ID, &c.VideoFile, &c.VideoURL, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
