package repository

import (
	"context"
	"errors"

	"github.com/despacho/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeamRepository defines the persistence interface for the about-page content.
type TeamRepository interface {
	// ListActive returns active members ordered by role, sort order, id.
	ListActive(ctx context.Context) ([]*model.TeamMember, error)
	// ActiveSection returns the newest active team section, or ErrNotFound
	// when none is configured.
	ActiveSection(ctx context.Context) (*model.TeamSection, error)
}

// PgTeamRepository is the PostgreSQL implementation of TeamRepository.
type PgTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamRepository creates a PgTeamRepository backed by the given pool.
func NewPgTeamRepository(pool *pgxpool.Pool) *PgTeamRepository {
	return &PgTeamRepository{pool: pool}
}

var _ TeamRepository = (*PgTeamRepository)(nil)

func (r *PgTeamRepository) ListActive(ctx context.Context) ([]*model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, role, image_url, sort_order
		 FROM team_members
		 WHERE active
		 ORDER BY role, sort_order, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.TeamMember
	for rows.Next() {
		m := &model.TeamMember{Active: true}
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.ImageURL, &m.SortOrder); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PgTeamRepository) ActiveSection(ctx context.Context) (*model.TeamSection, error) {
	s := &model.TeamSection{Active: true}
	err := r.pool.QueryRow(ctx,
		`SELECT id, image_url
		 FROM team_section
		 WHERE active
		 ORDER BY updated_at DESC
		 LIMIT 1`,
	).Scan(&s.ID, &s.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
