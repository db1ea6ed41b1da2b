// Package report_repo provides the read-only aggregate queries behind the
// statistics endpoints.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bogenliga/internal/domain/statistics"
	"bogenliga/internal/infrastructure/storage/postgres"
)

// StatisticsRepo implements statistics.Repository.
type StatisticsRepo struct {
	db      postgres.QuerierProvider
	builder squirrel.StatementBuilderType
}

// NewStatisticsRepo creates a new statistics repository.
func NewStatisticsRepo(db postgres.QuerierProvider) *StatisticsRepo {
	return &StatisticsRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// TotalsByEvent sums the arrows of every member per team of the event.
func (r *StatisticsRepo) TotalsByEvent(ctx context.Context, eventID int64, clubID *int64) ([]statistics.MemberTotals, error) {
	q := r.builder.
		Select(
			"m.member_id",
			"m.member_first_name AS first_name",
			"m.member_last_name AS last_name",
			"t.team_club_id AS club_id",
			"t.team_id",
			"COUNT(DISTINCT s.score_sheet_match_id) AS matches",
			"COUNT(*) AS ends",
			"COALESCE(SUM(cardinality(s.score_sheet_arrows)), 0)::bigint AS arrows",
			"COALESCE(SUM((SELECT SUM(a) FROM unnest(s.score_sheet_arrows) AS a)), 0)::bigint AS total",
		).
		From("score_sheet s").
		Join("team t ON t.team_id = s.score_sheet_team_id").
		Join("member m ON m.member_id = s.score_sheet_member_id").
		Where(squirrel.Eq{"t.team_event_id": eventID}).
		GroupBy("m.member_id", "m.member_first_name", "m.member_last_name", "t.team_club_id", "t.team_id").
		OrderBy("t.team_id", "m.member_last_name", "m.member_first_name")

	if clubID != nil {
		q = q.Where(squirrel.Eq{"t.team_club_id": *clubID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build statistics query: %w", err)
	}

	totals := make([]statistics.MemberTotals, 0)
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &totals, sql, args...); err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}
	return totals, nil
}
