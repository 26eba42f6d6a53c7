package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Service resolves a bookable item across the two catalog sources.
type Service interface {
	// Resolve finds the service in either the platform catalog or the partner
	// catalog and returns the normalized view. The platform lookup always runs
	// first; the partner fallback fires only after the platform catalog has
	// definitively answered "not found". An id may legitimately exist in only
	// one source, and the same id could name different items in each, so the
	// two lookups must never race.
	Resolve(ctx context.Context, category Category, id string) (*ResolvedService, error)
}

type service struct {
	repo Repository
}

// NewService creates a new catalog Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, category Category, id string) (*ResolvedService, error) {
	svc, err := s.repo.FindPlatform(ctx, category, id)
	if err == nil {
		return svc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		// Genuine lookup failure: do not mask it with a partner-catalog answer.
		return nil, fmt.Errorf("platform catalog lookup: %w", err)
	}

	svc, err = s.repo.FindPartner(ctx, category, id)
	if err == nil {
		return svc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("partner catalog lookup: %w", err)
	}

	return nil, ErrNotFound
}
