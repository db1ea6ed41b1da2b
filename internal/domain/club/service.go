package club

import (
	"context"

	"bogenliga/internal/core/security"
	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for clubs.
type Service struct {
	*domain.CatalogService[*Club]
	repo Repository
}

// NewService creates a new club service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Club]{
		Repo:       repo,
		TxManager:  txm,
		Changes:    changes,
		EntityName: "club",
	})

	svc := &Service{CatalogService: base, repo: repo}

	base.Hooks().OnBeforeUpdate(svc.authorizeUpdate)

	return svc
}

// FindByID returns one club.
func (s *Service) FindByID(ctx context.Context, id int64) (*Club, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteByID removes the club with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, c)
}

// authorizeUpdate lets club administrators edit their own club but not move
// it to another region.
func (s *Service) authorizeUpdate(ctx context.Context, c *Club) error {
	stored, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return err
	}
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket:       security.CanModifyClub,
		Scoped:        security.CanModifyMyClub,
		OrgIDs:        []int64{stored.ID},
		MovesGrouping: stored.RegionID != c.RegionID,
	})
}
