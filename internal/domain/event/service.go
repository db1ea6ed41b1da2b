package event

import (
	"context"
	"fmt"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for events.
type Service struct {
	*domain.CatalogService[*Event]
	repo Repository
}

// NewService creates a new event service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Event]{
		Repo:       repo,
		TxManager:  txm,
		Changes:    changes,
		EntityName: "event",
	})

	svc := &Service{CatalogService: base, repo: repo}

	base.Hooks().OnBeforeCreate(svc.ensureSingleEventPerSeason)
	base.Hooks().OnBeforeUpdate(svc.ensureSingleEventPerSeason)

	return svc
}

// FindByID returns one event.
func (s *Service) FindByID(ctx context.Context, id int64) (*Event, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// FindByLeagueManagerID returns the events managed by a user.
func (s *Service) FindByLeagueManagerID(ctx context.Context, userID int64) ([]*Event, error) {
	if err := domain.RequireNonNegative("leagueManagerId", userID); err != nil {
		return nil, err
	}
	return s.repo.FindByLeagueManagerID(ctx, userID)
}

// FindBySeason returns the events of a season.
func (s *Service) FindBySeason(ctx context.Context, season int64) ([]*Event, error) {
	if err := domain.RequirePositive("season", season); err != nil {
		return nil, err
	}
	return s.repo.FindBySeason(ctx, season)
}

// FindByLeagueID returns the events of a league.
func (s *Service) FindByLeagueID(ctx context.Context, leagueID int64) ([]*Event, error) {
	if err := domain.RequireNonNegative("leagueId", leagueID); err != nil {
		return nil, err
	}
	return s.repo.FindByLeagueID(ctx, leagueID)
}

// FindSeasons returns every season that has at least one event.
func (s *Service) FindSeasons(ctx context.Context) ([]int64, error) {
	return s.repo.FindSeasons(ctx)
}

// DeleteByID removes the event with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	e, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, e)
}

// ensureSingleEventPerSeason rejects a second event for the same league and
// season. The event being updated does not conflict with itself.
func (s *Service) ensureSingleEventPerSeason(ctx context.Context, e *Event) error {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID == e.ID && e.ID != 0 {
			continue
		}
		if other.LeagueID == e.LeagueID && other.Season == e.Season {
			return apperror.NewValidation(
				fmt.Sprintf("league %d already has an event in season %d", e.LeagueID, e.Season)).
				WithDetail("field", "season").
				WithDetail("conflictingEventId", other.ID)
		}
	}
	return nil
}
