package service

import (
	"context"

	"github.com/despacho/backend/internal/model"
)

// ProjectService serves the public portfolio listing and detail views.
type ProjectService interface {
	// List returns one page of projects matching opts. Page defaults to 1
	// and clamps to the last page when past the end; PageSize defaults to
	// 12 and is capped at 100.
	List(ctx context.Context, opts model.ProjectListOptions) (*model.ProjectListResult, error)

	// GetByID returns one project, or repository.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Project, error)
}
