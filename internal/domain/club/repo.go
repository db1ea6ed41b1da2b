package club

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for clubs.
type Repository interface {
	domain.CatalogRepository[*Club]

	FindByID(ctx context.Context, id int64) (*Club, error)
}
