package repository

import (
	"context"

	"github.com/despacho/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and
// msg.SubmittedAt from the database RETURNING clause. Each call creates a
// distinct row; identical resubmissions are not deduplicated.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message, project_ref)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, submitted_at`,
		msg.Name, msg.Email, msg.Message, msg.ProjectRef,
	).Scan(&msg.ID, &msg.SubmittedAt)
}
