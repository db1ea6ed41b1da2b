package league

import (
	"context"

	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for leagues.
type Service struct {
	*domain.CatalogService[*League]
	repo Repository
}

// NewService creates a new league service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*League]{
			Repo:       repo,
			TxManager:  txm,
			Changes:    changes,
			EntityName: "league",
		}),
		repo: repo,
	}
}

// FindByID returns one league.
func (s *Service) FindByID(ctx context.Context, id int64) (*League, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteByID removes the league with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	l, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, l)
}
