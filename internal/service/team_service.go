package service

import (
	"context"
	"errors"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/repository"
)

// TeamService serves the about-page content.
type TeamService interface {
	About(ctx context.Context) (*model.TeamPage, error)
}

type teamServiceImpl struct {
	repo repository.TeamRepository
}

// NewTeamService creates a TeamService backed by the given repository.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamServiceImpl{repo: repo}
}

// About splits active members by role; a missing team section just means no
// group photo.
func (s *teamServiceImpl) About(ctx context.Context) (*model.TeamPage, error) {
	members, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	page := &model.TeamPage{
		Architects:    []*model.TeamMember{},
		Collaborators: []*model.TeamMember{},
	}
	for _, m := range members {
		switch m.Role {
		case model.RoleArchitect:
			page.Architects = append(page.Architects, m)
		case model.RoleCollaborator:
			page.Collaborators = append(page.Collaborators, m)
		}
	}

	section, err := s.repo.ActiveSection(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if section != nil {
		page.GroupImage = section.ImageURL
	}
	return page, nil
}
