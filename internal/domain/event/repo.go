package event

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for events.
type Repository interface {
	domain.CatalogRepository[*Event]

	FindByID(ctx context.Context, id int64) (*Event, error)
	FindByLeagueManagerID(ctx context.Context, userID int64) ([]*Event, error)
	FindBySeason(ctx context.Context, season int64) ([]*Event, error)
	FindByLeagueID(ctx context.Context, leagueID int64) ([]*Event, error)

	// FindSeasons returns the distinct seasons in ascending order.
	FindSeasons(ctx context.Context) ([]int64, error)
}
