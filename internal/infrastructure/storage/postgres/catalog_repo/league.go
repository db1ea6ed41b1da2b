package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/league"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	leagueTable = "league"
	leagueID    = "league_id"
)

type leagueRecord struct {
	ID        int64
	Name      string
	RegionID  int64
	ParentID  *int64
	ManagerID *int64
	entity.AuditFields
}

var leagueConfig = newConfig(EntityConfig[leagueRecord]{
	Entity:       "league",
	Table:        leagueTable,
	Keys:         []string{leagueID},
	GeneratedKey: true,
	Audit:        func(r *leagueRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(leagueID, func(r *leagueRecord) *int64 { return &r.ID }),
	Col("league_name", func(r *leagueRecord) *string { return &r.Name }),
	Col("league_region_id", func(r *leagueRecord) *int64 { return &r.RegionID }),
	Col("league_parent_id", func(r *leagueRecord) **int64 { return &r.ParentID }),
	Col("league_manager_id", func(r *leagueRecord) **int64 { return &r.ManagerID }),
)

var (
	leagueFindAll  = query.SelectAll(leagueTable).OrderBy(leagueID).Compose()
	leagueFindByID = query.SelectAll(leagueTable).WhereEquals(leagueID).Compose()
)

// LeagueRepo implements league.Repository.
type LeagueRepo struct {
	*mappedRepo[leagueRecord, *league.League]
}

// NewLeagueRepo creates a new league repository.
func NewLeagueRepo(db postgres.QuerierProvider) *LeagueRepo {
	return &LeagueRepo{newMappedRepo(db, leagueConfig, leagueFindAll, toLeague, fromLeague)}
}

// FindByID retrieves a league by id.
func (r *LeagueRepo) FindByID(ctx context.Context, id int64) (*league.League, error) {
	return r.one(ctx, leagueFindByID, id)
}

func toLeague(rec *leagueRecord) *league.League {
	return &league.League{
		ID:          rec.ID,
		Name:        rec.Name,
		RegionID:    rec.RegionID,
		ParentID:    rec.ParentID,
		ManagerID:   rec.ManagerID,
		AuditFields: rec.AuditFields,
	}
}

func fromLeague(l *league.League) *leagueRecord {
	return &leagueRecord{
		ID:          l.ID,
		Name:        l.Name,
		RegionID:    l.RegionID,
		ParentID:    l.ParentID,
		ManagerID:   l.ManagerID,
		AuditFields: l.AuditFields,
	}
}
