package scoresheet

import (
	"context"

	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
)

// Service provides business logic for score sheets.
type Service struct {
	*domain.CatalogService[*ScoreSheet]
	repo Repository
}

// NewService creates a new score sheet service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*ScoreSheet]{
			Repo:       repo,
			TxManager:  txm,
			Changes:    changes,
			EntityName: "score_sheet",
		}),
		repo: repo,
	}
}

// FindByID returns one score sheet.
func (s *Service) FindByID(ctx context.Context, id int64) (*ScoreSheet, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// FindByKey returns the score sheet identified by its natural key.
func (s *Service) FindByKey(ctx context.Context, key NaturalKey) (*ScoreSheet, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return s.repo.FindByKey(ctx, key)
}

// FindByMatchID returns all score sheets of a match.
func (s *Service) FindByMatchID(ctx context.Context, matchID int64) ([]*ScoreSheet, error) {
	if err := domain.RequireNonNegative("matchId", matchID); err != nil {
		return nil, err
	}
	return s.repo.FindByMatchID(ctx, matchID)
}

// FindByTeamID returns all score sheets of a team.
func (s *Service) FindByTeamID(ctx context.Context, teamID int64) ([]*ScoreSheet, error) {
	if err := domain.RequireNonNegative("teamId", teamID); err != nil {
		return nil, err
	}
	return s.repo.FindByTeamID(ctx, teamID)
}

// FindByMemberID returns all score sheets of a member.
func (s *Service) FindByMemberID(ctx context.Context, memberID int64) ([]*ScoreSheet, error) {
	if err := domain.RequireNonNegative("memberId", memberID); err != nil {
		return nil, err
	}
	return s.repo.FindByMemberID(ctx, memberID)
}

// FindByTeamAndMatch returns the score sheets of a team in one match.
func (s *Service) FindByTeamAndMatch(ctx context.Context, teamID, matchID int64) ([]*ScoreSheet, error) {
	if err := domain.FirstError(
		domain.RequireNonNegative("teamId", teamID),
		domain.RequireNonNegative("matchId", matchID),
	); err != nil {
		return nil, err
	}
	return s.repo.FindByTeamAndMatch(ctx, teamID, matchID)
}

// FindByMemberAndTeam returns the score sheets a member shot for a team.
func (s *Service) FindByMemberAndTeam(ctx context.Context, memberID, teamID int64) ([]*ScoreSheet, error) {
	if err := domain.FirstError(
		domain.RequireNonNegative("memberId", memberID),
		domain.RequireNonNegative("teamId", teamID),
	); err != nil {
		return nil, err
	}
	return s.repo.FindByMemberAndTeam(ctx, memberID, teamID)
}

// FindByCompetitionID returns all score sheets of a competition day.
func (s *Service) FindByCompetitionID(ctx context.Context, competitionID int64) ([]*ScoreSheet, error) {
	if err := domain.RequireNonNegative("competitionId", competitionID); err != nil {
		return nil, err
	}
	return s.repo.FindByCompetitionID(ctx, competitionID)
}

// DeleteByID removes the score sheet with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	sheet, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, sheet)
}
