package configuration

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for settings.
type Repository interface {
	domain.CatalogRepository[*Configuration]

	FindByKey(ctx context.Context, key string) (*Configuration, error)
}
