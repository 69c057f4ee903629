package celebrities

import (
	"context"
	"errors"
	"time"

	"bookceleb/pkg/cache"
	"bookceleb/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyAll       = "bookceleb:celebrities:all"
	cacheKeyByID      = "bookceleb:celebrities:id:"
	cacheKeyAllPrefix = "bookceleb:celebrities:*"
)

type Service interface {
	ListCelebrities(ctx context.Context) ([]Celebrity, error)
	GetCelebrity(ctx context.Context, id uuid.UUID) (*Celebrity, error)
	SearchCelebrities(ctx context.Context, query string) ([]Celebrity, error)
	CreateCelebrity(ctx context.Context, req CreateCelebrityRequest) (*Celebrity, error)
	UpdateCelebrity(ctx context.Context, id uuid.UUID, req UpdateCelebrityRequest) (*Celebrity, error)
	DeleteCelebrity(ctx context.Context, id uuid.UUID) error
	CountCelebrities(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates a celebrity service. cacheSvc may be nil, in which case
// every read goes to the store.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheSvc,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListCelebrities(ctx context.Context) ([]Celebrity, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var celebs []Celebrity
	err := s.cache.GetOrSet(ctx, cacheKeyAll, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &celebs)
	if err != nil {
		// Cache trouble must not take down browsing; fall back to the store.
		logger.GetDefault().ErrorWithContext(ctx, "celebrity list cache read failed", err, nil)
		return s.repo.GetAll(ctx)
	}
	return celebs, nil
}

func (s *service) GetCelebrity(ctx context.Context, id uuid.UUID) (*Celebrity, error) {
	if s.cache == nil {
		return s.repo.GetByID(ctx, id)
	}

	var celeb Celebrity
	err := s.cache.GetOrSet(ctx, cacheKeyByID+id.String(), s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, id)
	}, &celeb)
	if err != nil {
		if errors.Is(err, ErrCelebrityNotFound) {
			return nil, err
		}
		logger.GetDefault().ErrorWithContext(ctx, "celebrity cache read failed", err, nil)
		return s.repo.GetByID(ctx, id)
	}
	return &celeb, nil
}

// SearchCelebrities always hits the store; search results are not cached.
func (s *service) SearchCelebrities(ctx context.Context, query string) ([]Celebrity, error) {
	return s.repo.Search(ctx, query)
}

func (s *service) CreateCelebrity(ctx context.Context, req CreateCelebrityRequest) (*Celebrity, error) {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	celeb := &Celebrity{
		Name:            req.Name,
		Image:           req.Image,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		FeeRange:        req.FeeRange,
		Availability:    availability,
	}

	if err := s.repo.Create(ctx, celeb); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return celeb, nil
}

func (s *service) UpdateCelebrity(ctx context.Context, id uuid.UUID, req UpdateCelebrityRequest) (*Celebrity, error) {
	celeb, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		celeb.Name = *req.Name
	}
	if req.Image != nil {
		celeb.Image = *req.Image
	}
	if req.Description != nil {
		celeb.Description = *req.Description
	}
	if req.FullDescription != nil {
		celeb.FullDescription = *req.FullDescription
	}
	if req.Category != nil {
		celeb.Category = *req.Category
	}
	if req.FeeRange != nil {
		celeb.FeeRange = *req.FeeRange
	}
	if req.Availability != nil {
		celeb.Availability = *req.Availability
	}

	if err := s.repo.Update(ctx, celeb); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return celeb, nil
}

func (s *service) DeleteCelebrity(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) CountCelebrities(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cacheKeyAllPrefix); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "celebrity cache invalidation failed", err, nil)
	}
}
