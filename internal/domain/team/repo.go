package team

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for teams.
type Repository interface {
	domain.CatalogRepository[*Team]

	FindByID(ctx context.Context, id int64) (*Team, error)
	FindByClubID(ctx context.Context, clubID int64) ([]*Team, error)
	FindByEventID(ctx context.Context, eventID int64) ([]*Team, error)
}
