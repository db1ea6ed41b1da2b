// Package club provides the archery clubs taking part in leagues.
package club

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Club is a member club of the federation.
type Club struct {
	ID          int64
	Name        string
	Identifier  string // federation club number
	RegionID    int64
	Website     *string
	Description *string

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (c *Club) Validate(ctx context.Context) error {
	return domain.FirstError(
		domain.RequireNonNegative("id", c.ID),
		domain.RequireNotBlank("name", c.Name),
		domain.RequireNotBlank("identifier", c.Identifier),
		domain.RequireNonNegative("regionId", c.RegionID),
	)
}

// EntityKey implements domain.Entity.
func (c *Club) EntityKey() any {
	return c.ID
}
