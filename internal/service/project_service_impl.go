package service

import (
	"context"
	"strings"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/repository"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo    repository.ProjectRepository
	baseURL string // prefix for relative media paths; "" leaves them as-is
}

// NewProjectService creates a ProjectService backed by the given repository.
// baseURL, when non-empty, turns relative image paths into absolute URLs.
func NewProjectService(repo repository.ProjectRepository, baseURL string) ProjectService {
	return &projectServiceImpl{repo: repo, baseURL: baseURL}
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) (*model.ProjectListResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}
	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	projects, count, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	pages := (count + opts.PageSize - 1) / opts.PageSize
	if pages < 1 {
		pages = 1
	}
	// A page past the end serves the last page instead of an empty result.
	if opts.Page > pages {
		opts.Page = pages
		projects, count, err = s.repo.List(ctx, opts)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range projects {
		s.decorate(p)
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	return &model.ProjectListResult{
		Count:    count,
		Page:     opts.Page,
		Pages:    pages,
		PageSize: opts.PageSize,
		Results:  projects,
	}, nil
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(p)
	return p, nil
}

// decorate applies the gallery fallback and absolutizes image URLs: a
// project without gallery images serves its legacy main image as the single
// entry, and relative paths get the public base prefix.
func (s *projectServiceImpl) decorate(p *model.Project) {
	if len(p.Images) == 0 && p.ImageURL != "" {
		p.Images = []model.ProjectImage{{URL: p.ImageURL}}
	}
	for i := range p.Images {
		p.Images[i].URL = s.absoluteURL(p.Images[i].URL)
	}
	// [] not null in JSON
	if p.Images == nil {
		p.Images = []model.ProjectImage{}
	}
}

func (s *projectServiceImpl) absoluteURL(u string) string {
	if s.baseURL == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(s.baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
