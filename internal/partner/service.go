package partner

import "context"

// Service defines business logic related to partners.
type Service interface {
	// GetByUserID maps an authenticated partner account to its partner record.
	GetByUserID(ctx context.Context, userID string) (*Partner, error)
}

type service struct {
	repo Repository
}

// NewService creates a new partner Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*Partner, error) {
	return s.repo.GetByUserID(ctx, userID)
}
