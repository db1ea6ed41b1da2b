package league

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for leagues.
type Repository interface {
	domain.CatalogRepository[*League]

	FindByID(ctx context.Context, id int64) (*League, error)
}
