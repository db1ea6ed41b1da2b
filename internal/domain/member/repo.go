package member

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for members.
type Repository interface {
	domain.CatalogRepository[*Member]

	FindByID(ctx context.Context, id int64) (*Member, error)
	FindByClubID(ctx context.Context, clubID int64) ([]*Member, error)
}
