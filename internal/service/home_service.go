package service

import (
	"context"
	"errors"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/repository"
)

// HomeService serves the landing-page content.
type HomeService interface {
	Get(ctx context.Context) (*model.HomePage, error)
}

type homeServiceImpl struct {
	repo repository.HomeRepository
}

// NewHomeService creates a HomeService backed by the given repository.
func NewHomeService(repo repository.HomeRepository) HomeService {
	return &homeServiceImpl{repo: repo}
}

// Get returns the configured promo video. A site with no configuration yet
// serves an empty page rather than an error.
func (s *homeServiceImpl) Get(ctx context.Context) (*model.HomePage, error) {
	cfg, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.HomePage{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.HomePage{
		VideoFile:     cfg.VideoFile,
		VideoURL:      cfg.VideoURL,
		VideoEmbedURL: cfg.VideoEmbedURL(),
	}, nil
}
