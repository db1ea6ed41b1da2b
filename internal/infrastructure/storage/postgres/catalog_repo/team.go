package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/team"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	teamTable     = "team"
	teamID        = "team_id"
	teamClubID    = "team_club_id"
	teamEventID   = "team_event_id"
	teamSortOrder = "team_sort_order"
)

type teamRecord struct {
	ID        int64
	ClubID    int64
	Number    int64
	EventID   int64
	SortOrder int64
	entity.AuditFields
}

var teamConfig = newConfig(EntityConfig[teamRecord]{
	Entity:       "team",
	Table:        teamTable,
	Keys:         []string{teamID},
	GeneratedKey: true,
	Audit:        func(r *teamRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(teamID, func(r *teamRecord) *int64 { return &r.ID }),
	Col(teamClubID, func(r *teamRecord) *int64 { return &r.ClubID }),
	Col("team_number", func(r *teamRecord) *int64 { return &r.Number }),
	Col(teamEventID, func(r *teamRecord) *int64 { return &r.EventID }),
	Col(teamSortOrder, func(r *teamRecord) *int64 { return &r.SortOrder }),
)

var (
	teamFindAll       = query.SelectAll(teamTable).OrderBy(teamID).Compose()
	teamFindByID      = query.SelectAll(teamTable).WhereEquals(teamID).Compose()
	teamFindByClubID  = query.SelectAll(teamTable).WhereEquals(teamClubID).OrderBy(teamID).Compose()
	teamFindByEventID = query.SelectAll(teamTable).WhereEquals(teamEventID).OrderBy(teamSortOrder, teamID).Compose()
)

// TeamRepo implements team.Repository.
type TeamRepo struct {
	*mappedRepo[teamRecord, *team.Team]
}

// NewTeamRepo creates a new team repository.
func NewTeamRepo(db postgres.QuerierProvider) *TeamRepo {
	return &TeamRepo{newMappedRepo(db, teamConfig, teamFindAll, toTeam, fromTeam)}
}

// FindByID retrieves a team by id.
func (r *TeamRepo) FindByID(ctx context.Context, id int64) (*team.Team, error) {
	return r.one(ctx, teamFindByID, id)
}

// FindByClubID retrieves the teams of a club.
func (r *TeamRepo) FindByClubID(ctx context.Context, clubID int64) ([]*team.Team, error) {
	return r.list(ctx, teamFindByClubID, clubID)
}

// FindByEventID retrieves the teams of an event in sort order.
func (r *TeamRepo) FindByEventID(ctx context.Context, eventID int64) ([]*team.Team, error) {
	return r.list(ctx, teamFindByEventID, eventID)
}

func toTeam(rec *teamRecord) *team.Team {
	return &team.Team{
		ID:          rec.ID,
		ClubID:      rec.ClubID,
		Number:      rec.Number,
		EventID:     rec.EventID,
		SortOrder:   rec.SortOrder,
		AuditFields: rec.AuditFields,
	}
}

func fromTeam(t *team.Team) *teamRecord {
	return &teamRecord{
		ID:          t.ID,
		ClubID:      t.ClubID,
		Number:      t.Number,
		EventID:     t.EventID,
		SortOrder:   t.SortOrder,
		AuditFields: t.AuditFields,
	}
}
