package region

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for regions.
type Repository interface {
	domain.CatalogRepository[*Region]

	FindByID(ctx context.Context, id int64) (*Region, error)

	// FindAllByType returns the regions of one type ordered by name.
	FindAllByType(ctx context.Context, t Type) ([]*Region, error)
}
