package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/scoresheet"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	scoreSheetTable         = "score_sheet"
	scoreSheetID            = "score_sheet_id"
	scoreSheetCompetitionID = "score_sheet_competition_id"
	scoreSheetMatchID       = "score_sheet_match_id"
	scoreSheetMatchNo       = "score_sheet_match_no"
	scoreSheetTeamID        = "score_sheet_team_id"
	scoreSheetMemberID      = "score_sheet_member_id"
	scoreSheetEndNo         = "score_sheet_end_no"
)

type scoreSheetRecord struct {
	ID            int64
	CompetitionID int64
	MatchID       int64
	MatchNo       int64
	TeamID        int64
	MemberID      int64
	EndNo         int64
	Arrows        []int64
	entity.AuditFields
}

var scoreSheetConfig = newConfig(EntityConfig[scoreSheetRecord]{
	Entity:       "score_sheet",
	Table:        scoreSheetTable,
	Keys:         []string{scoreSheetID},
	GeneratedKey: true,
	Audit:        func(r *scoreSheetRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(scoreSheetID, func(r *scoreSheetRecord) *int64 { return &r.ID }),
	Col(scoreSheetCompetitionID, func(r *scoreSheetRecord) *int64 { return &r.CompetitionID }),
	Col(scoreSheetMatchID, func(r *scoreSheetRecord) *int64 { return &r.MatchID }),
	Col(scoreSheetMatchNo, func(r *scoreSheetRecord) *int64 { return &r.MatchNo }),
	Col(scoreSheetTeamID, func(r *scoreSheetRecord) *int64 { return &r.TeamID }),
	Col(scoreSheetMemberID, func(r *scoreSheetRecord) *int64 { return &r.MemberID }),
	Col(scoreSheetEndNo, func(r *scoreSheetRecord) *int64 { return &r.EndNo }),
	Col("score_sheet_arrows", func(r *scoreSheetRecord) *[]int64 { return &r.Arrows }),
)

var (
	scoreSheetSelect   = query.SelectAll(scoreSheetTable)
	scoreSheetOrder    = []string{scoreSheetMatchNo, scoreSheetEndNo, scoreSheetMemberID}
	scoreSheetFindAll  = scoreSheetSelect.OrderBy(scoreSheetID).Compose()
	scoreSheetFindByID = scoreSheetSelect.WhereEquals(scoreSheetID).Compose()

	scoreSheetFindByKey = scoreSheetSelect.
		WhereEquals(scoreSheetCompetitionID).
		WhereEquals(scoreSheetMatchNo).
		WhereEquals(scoreSheetTeamID).
		WhereEquals(scoreSheetEndNo).
		WhereEquals(scoreSheetMemberID).
		Compose()

	scoreSheetFindByMatchID       = scoreSheetSelect.WhereEquals(scoreSheetMatchID).OrderBy(scoreSheetOrder...).Compose()
	scoreSheetFindByTeamID        = scoreSheetSelect.WhereEquals(scoreSheetTeamID).OrderBy(scoreSheetOrder...).Compose()
	scoreSheetFindByMemberID      = scoreSheetSelect.WhereEquals(scoreSheetMemberID).OrderBy(scoreSheetOrder...).Compose()
	scoreSheetFindByCompetitionID = scoreSheetSelect.WhereEquals(scoreSheetCompetitionID).OrderBy(scoreSheetOrder...).Compose()

	scoreSheetFindByTeamAndMatch = scoreSheetSelect.
		WhereEquals(scoreSheetTeamID).
		WhereEquals(scoreSheetMatchID).
		OrderBy(scoreSheetOrder...).
		Compose()

	scoreSheetFindByMemberAndTeam = scoreSheetSelect.
		WhereEquals(scoreSheetMemberID).
		WhereEquals(scoreSheetTeamID).
		OrderBy(scoreSheetOrder...).
		Compose()
)

// ScoreSheetRepo implements scoresheet.Repository.
type ScoreSheetRepo struct {
	*mappedRepo[scoreSheetRecord, *scoresheet.ScoreSheet]
}

// NewScoreSheetRepo creates a new score sheet repository.
func NewScoreSheetRepo(db postgres.QuerierProvider) *ScoreSheetRepo {
	return &ScoreSheetRepo{newMappedRepo(db, scoreSheetConfig, scoreSheetFindAll, toScoreSheet, fromScoreSheet)}
}

// FindByID retrieves a score sheet by id.
func (r *ScoreSheetRepo) FindByID(ctx context.Context, id int64) (*scoresheet.ScoreSheet, error) {
	return r.one(ctx, scoreSheetFindByID, id)
}

// FindByKey retrieves a score sheet by its natural key.
func (r *ScoreSheetRepo) FindByKey(ctx context.Context, k scoresheet.NaturalKey) (*scoresheet.ScoreSheet, error) {
	return r.one(ctx, scoreSheetFindByKey, k.CompetitionID, k.MatchNo, k.TeamID, k.EndNo, k.MemberID)
}

// FindByMatchID retrieves the score sheets of a match.
func (r *ScoreSheetRepo) FindByMatchID(ctx context.Context, matchID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByMatchID, matchID)
}

// FindByTeamID retrieves the score sheets of a team.
func (r *ScoreSheetRepo) FindByTeamID(ctx context.Context, teamID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByTeamID, teamID)
}

// FindByMemberID retrieves the score sheets of a member.
func (r *ScoreSheetRepo) FindByMemberID(ctx context.Context, memberID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByMemberID, memberID)
}

// FindByTeamAndMatch retrieves the score sheets of a team in one match.
func (r *ScoreSheetRepo) FindByTeamAndMatch(ctx context.Context, teamID, matchID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByTeamAndMatch, teamID, matchID)
}

// FindByMemberAndTeam retrieves the score sheets a member shot for a team.
func (r *ScoreSheetRepo) FindByMemberAndTeam(ctx context.Context, memberID, teamID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByMemberAndTeam, memberID, teamID)
}

// FindByCompetitionID retrieves the score sheets of a competition day.
func (r *ScoreSheetRepo) FindByCompetitionID(ctx context.Context, competitionID int64) ([]*scoresheet.ScoreSheet, error) {
	return r.list(ctx, scoreSheetFindByCompetitionID, competitionID)
}

func toScoreSheet(rec *scoreSheetRecord) *scoresheet.ScoreSheet {
	return &scoresheet.ScoreSheet{
		ID:            rec.ID,
		CompetitionID: rec.CompetitionID,
		MatchID:       rec.MatchID,
		MatchNo:       rec.MatchNo,
		TeamID:        rec.TeamID,
		MemberID:      rec.MemberID,
		EndNo:         rec.EndNo,
		Arrows:        rec.Arrows,
		AuditFields:   rec.AuditFields,
	}
}

// fromScoreSheet never writes a NULL arrow array.
func fromScoreSheet(s *scoresheet.ScoreSheet) *scoreSheetRecord {
	return &scoreSheetRecord{
		ID:            s.ID,
		CompetitionID: s.CompetitionID,
		MatchID:       s.MatchID,
		MatchNo:       s.MatchNo,
		TeamID:        s.TeamID,
		MemberID:      s.MemberID,
		EndNo:         s.EndNo,
		Arrows:        append([]int64{}, s.Arrows...),
		AuditFields:   s.AuditFields,
	}
}
