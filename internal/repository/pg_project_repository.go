package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/despacho/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	// List returns one page of projects matching opts plus the total match
	// count. Gallery images are loaded for every returned project.
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// List filters by category/subcategory (exact, case-insensitive) and name
// substring, newest first. opts.Page is 1-based and assumed already clamped
// by the service.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int, error) {
	var conditions []string
	var args []any

	if opts.Category != "" {
		args = append(args, opts.Category)
		conditions = append(conditions, "LOWER(category) = LOWER($"+strconv.Itoa(len(args))+")")
	}
	if opts.Subcategory != "" {
		args = append(args, opts.Subcategory)
		conditions = append(conditions, "LOWER(subcategory) = LOWER($"+strconv.Itoa(len(args))+")")
	}
	if opts.Query != "" {
		args = append(args, opts.Query)
		conditions = append(conditions, "name ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM projects"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, opts.PageSize, (opts.Page-1)*opts.PageSize)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, category, subcategory, image_url, created_at
		 FROM projects`+where+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT $`+limitArg+` OFFSET $`+offsetArg,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Subcategory, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadImages(ctx, projects); err != nil {
		return nil, 0, err
	}
	return projects, count, nil
}

// GetByID returns one project with its gallery images, or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, category, subcategory, image_url, created_at
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Subcategory, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadImages(ctx, []*model.Project{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadImages attaches gallery images to the given projects with a single
// query, avoiding one query per project.
func (r *PgProjectRepository) loadImages(ctx context.Context, projects []*model.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]int64, len(projects))
	byID := make(map[int64]*model.Project, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	rows, err := r.pool.Query(ctx,
		`SELECT project_id, url, sort_order
		 FROM project_images
		 WHERE project_id = ANY($1)
		 ORDER BY sort_order, id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var img model.ProjectImage
		if err := rows.Scan(&projectID, &img.URL, &img.SortOrder); err != nil {
			return err
		}
		if p, ok := byID[projectID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}
