package configuration

import (
	"context"

	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for settings.
type Service struct {
	*domain.CatalogService[*Configuration]
	repo Repository
}

// NewService creates a new configuration service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Configuration]{
			Repo:       repo,
			TxManager:  txm,
			Changes:    changes,
			EntityName: "configuration",
		}),
		repo: repo,
	}
}

// FindByKey returns the setting stored under key.
func (s *Service) FindByKey(ctx context.Context, key string) (*Configuration, error) {
	if err := domain.RequireNotBlank("key", key); err != nil {
		return nil, err
	}
	return s.repo.FindByKey(ctx, key)
}

// DeleteByKey removes the setting stored under key.
func (s *Service) DeleteByKey(ctx context.Context, key string) error {
	c, err := s.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	return s.Delete(ctx, c)
}
