package scoresheet

import (
	"context"

	"bogenliga/internal/domain"
)

// Repository defines persistence for score sheets. Lists are ordered by
// match number, end number and member.
type Repository interface {
	domain.CatalogRepository[*ScoreSheet]

	FindByID(ctx context.Context, id int64) (*ScoreSheet, error)
	FindByKey(ctx context.Context, key NaturalKey) (*ScoreSheet, error)
	FindByMatchID(ctx context.Context, matchID int64) ([]*ScoreSheet, error)
	FindByTeamID(ctx context.Context, teamID int64) ([]*ScoreSheet, error)
	FindByMemberID(ctx context.Context, memberID int64) ([]*ScoreSheet, error)
	FindByTeamAndMatch(ctx context.Context, teamID, matchID int64) ([]*ScoreSheet, error)
	FindByMemberAndTeam(ctx context.Context, memberID, teamID int64) ([]*ScoreSheet, error)
	FindByCompetitionID(ctx context.Context, competitionID int64) ([]*ScoreSheet, error)
}
