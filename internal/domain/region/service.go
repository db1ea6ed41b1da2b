package region

import (
	"context"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for regions.
type Service struct {
	*domain.CatalogService[*Region]
	repo Repository
}

// NewService creates a new region service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Region]{
		Repo:       repo,
		TxManager:  txm,
		Changes:    changes,
		EntityName: "region",
	})

	svc := &Service{CatalogService: base, repo: repo}

	base.Hooks().OnBeforeCreate(svc.checkParent)
	base.Hooks().OnBeforeUpdate(svc.checkParent)

	return svc
}

// FindAll returns all regions ordered by id with parent names resolved.
func (s *Service) FindAll(ctx context.Context) ([]*Region, error) {
	all, err := s.CatalogService.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resolveParents(all, all)
	return all, nil
}

// FindByID returns one region.
func (s *Service) FindByID(ctx context.Context, id int64) (*Region, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.withParentNames(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// FindAllByType returns the regions of one type ordered by name.
func (s *Service) FindAllByType(ctx context.Context, typeName string) ([]*Region, error) {
	t, err := ParseType(typeName)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FindAllByType(ctx, t)
	if err != nil {
		return nil, err
	}
	if err := s.withParentNames(ctx, items...); err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores a new region.
func (s *Service) Create(ctx context.Context, r *Region) (*Region, error) {
	created, err := s.CatalogService.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return created, s.withParentNames(ctx, created)
}

// Update writes r.
func (s *Service) Update(ctx context.Context, r *Region) (*Region, error) {
	updated, err := s.CatalogService.Update(ctx, r)
	if err != nil {
		return nil, err
	}
	return updated, s.withParentNames(ctx, updated)
}

// DeleteByID removes the region with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, r)
}

func (s *Service) checkParent(ctx context.Context, r *Region) error {
	if r.ParentID == nil {
		return nil
	}
	if _, err := s.repo.FindByID(ctx, *r.ParentID); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("parent region does not exist").
				WithDetail("field", "parentId").
				WithDetail("value", *r.ParentID)
		}
		return err
	}
	return nil
}

func (s *Service) withParentNames(ctx context.Context, items ...*Region) error {
	needed := false
	for _, r := range items {
		if r.ParentID != nil {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	resolveParents(items, all)
	return nil
}

func resolveParents(items, all []*Region) {
	names := make(map[int64]string, len(all))
	for _, r := range all {
		names[r.ID] = r.Name
	}
	for _, r := range items {
		if r.ParentID != nil {
			r.ParentName = names[*r.ParentID]
		}
	}
}
