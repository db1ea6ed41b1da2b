package statistics

import (
	"context"

	"bogenliga/internal/domain"
)

// Service computes archer statistics.
type Service struct {
	repo Repository
}

// NewService creates a new statistics service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ByEvent returns the statistics of all archers of an event.
func (s *Service) ByEvent(ctx context.Context, eventID int64) ([]MemberStatistics, error) {
	if err := domain.RequireNonNegative("eventId", eventID); err != nil {
		return nil, err
	}
	return s.load(ctx, eventID, nil)
}

// ByEventAndClub returns the statistics of one club's archers in an event.
func (s *Service) ByEventAndClub(ctx context.Context, eventID, clubID int64) ([]MemberStatistics, error) {
	if err := domain.FirstError(
		domain.RequireNonNegative("eventId", eventID),
		domain.RequireNonNegative("clubId", clubID),
	); err != nil {
		return nil, err
	}
	return s.load(ctx, eventID, &clubID)
}

func (s *Service) load(ctx context.Context, eventID int64, clubID *int64) ([]MemberStatistics, error) {
	totals, err := s.repo.TotalsByEvent(ctx, eventID, clubID)
	if err != nil {
		return nil, err
	}
	out := make([]MemberStatistics, len(totals))
	for i, t := range totals {
		out[i] = MemberStatistics{MemberTotals: t, Average: Average(t.Total, t.Arrows)}
	}
	return out, nil
}
