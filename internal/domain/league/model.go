// Package league provides the leagues events are held in.
package league

import (
	"context"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// League groups clubs of a region into a competition class.
type League struct {
	ID        int64
	Name      string
	RegionID  int64
	ParentID  *int64 // next higher league
	ManagerID *int64 // user responsible for the league

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (l *League) Validate(ctx context.Context) error {
	if err := domain.FirstError(
		domain.RequireNonNegative("id", l.ID),
		domain.RequireNotBlank("name", l.Name),
		domain.RequireNonNegative("regionId", l.RegionID),
	); err != nil {
		return err
	}
	if l.ParentID != nil && l.ID != 0 && *l.ParentID == l.ID {
		return apperror.NewValidation("league cannot be its own parent").
			WithDetail("field", "parentId")
	}
	if l.ManagerID != nil {
		return domain.RequireNonNegative("managerId", *l.ManagerID)
	}
	return nil
}

// EntityKey implements domain.Entity.
func (l *League) EntityKey() any {
	return l.ID
}
