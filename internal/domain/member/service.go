package member

import (
	"context"

	"bogenliga/internal/core/security"
	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for members.
type Service struct {
	*domain.CatalogService[*Member]
	repo Repository
}

// NewService creates a new member service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Member]{
		Repo:       repo,
		TxManager:  txm,
		Changes:    changes,
		EntityName: "member",
	})

	svc := &Service{CatalogService: base, repo: repo}

	base.Hooks().OnBeforeCreate(svc.authorizeOwnClub)
	base.Hooks().OnBeforeUpdate(svc.authorizeUpdate)
	base.Hooks().OnBeforeDelete(svc.authorizeOwnClub)

	return svc
}

// FindByID returns one member.
func (s *Service) FindByID(ctx context.Context, id int64) (*Member, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// FindByClubID returns the members of a club.
func (s *Service) FindByClubID(ctx context.Context, clubID int64) ([]*Member, error) {
	if err := domain.RequireNonNegative("clubId", clubID); err != nil {
		return nil, err
	}
	return s.repo.FindByClubID(ctx, clubID)
}

// DeleteByID removes the member with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, m)
}

func (s *Service) authorizeOwnClub(ctx context.Context, m *Member) error {
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket: security.CanModifyMember,
		Scoped:  security.CanModifyMyClub,
		OrgIDs:  []int64{m.ClubID},
	})
}

// authorizeUpdate lets club administrators edit their own members but not
// transfer them to another club.
func (s *Service) authorizeUpdate(ctx context.Context, m *Member) error {
	stored, err := s.repo.FindByID(ctx, m.ID)
	if err != nil {
		return err
	}
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket:       security.CanModifyMember,
		Scoped:        security.CanModifyMyClub,
		OrgIDs:        []int64{stored.ClubID},
		MovesGrouping: stored.ClubID != m.ClubID,
	})
}
