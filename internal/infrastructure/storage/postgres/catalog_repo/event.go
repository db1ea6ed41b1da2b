package catalog_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/event"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	eventTable           = "event"
	eventID              = "event_id"
	eventLeagueID        = "event_league_id"
	eventSeason          = "event_season"
	eventLeagueManagerID = "event_league_manager_id"
)

type eventRecord struct {
	ID                int64
	Name              string
	LeagueID          int64
	Season            int64
	Deadline          time.Time
	LeagueManagerID   int64
	CompetitionTypeID int64
	entity.AuditFields
}

var eventConfig = newConfig(EntityConfig[eventRecord]{
	Entity:       "event",
	Table:        eventTable,
	Keys:         []string{eventID},
	GeneratedKey: true,
	Audit:        func(r *eventRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(eventID, func(r *eventRecord) *int64 { return &r.ID }),
	Col("event_name", func(r *eventRecord) *string { return &r.Name }),
	Col(eventLeagueID, func(r *eventRecord) *int64 { return &r.LeagueID }),
	Col(eventSeason, func(r *eventRecord) *int64 { return &r.Season }),
	TimeCol("event_deadline", func(r *eventRecord) *time.Time { return &r.Deadline }),
	Col(eventLeagueManagerID, func(r *eventRecord) *int64 { return &r.LeagueManagerID }),
	Col("event_competition_type_id", func(r *eventRecord) *int64 { return &r.CompetitionTypeID }),
)

var (
	eventSelect                = query.SelectAll(eventTable)
	eventFindAll               = eventSelect.OrderBy(eventID).Compose()
	eventFindByID              = eventSelect.WhereEquals(eventID).Compose()
	eventFindByLeagueManagerID = eventSelect.WhereEquals(eventLeagueManagerID).OrderBy(eventID).Compose()
	eventFindBySeason          = eventSelect.WhereEquals(eventSeason).OrderBy(eventID).Compose()
	eventFindByLeagueID        = eventSelect.WhereEquals(eventLeagueID).OrderBy(eventSeason).Compose()
	eventFindSeasons           = query.Select(eventTable, eventSeason).Distinct().OrderBy(eventSeason).Compose()
)

// EventRepo implements event.Repository.
type EventRepo struct {
	*mappedRepo[eventRecord, *event.Event]
	db postgres.QuerierProvider
}

// NewEventRepo creates a new event repository.
func NewEventRepo(db postgres.QuerierProvider) *EventRepo {
	return &EventRepo{
		mappedRepo: newMappedRepo(db, eventConfig, eventFindAll, toEvent, fromEvent),
		db:         db,
	}
}

// FindByID retrieves an event by id.
func (r *EventRepo) FindByID(ctx context.Context, id int64) (*event.Event, error) {
	return r.one(ctx, eventFindByID, id)
}

// FindByLeagueManagerID retrieves the events a user manages.
func (r *EventRepo) FindByLeagueManagerID(ctx context.Context, userID int64) ([]*event.Event, error) {
	return r.list(ctx, eventFindByLeagueManagerID, userID)
}

// FindBySeason retrieves the events of a season.
func (r *EventRepo) FindBySeason(ctx context.Context, season int64) ([]*event.Event, error) {
	return r.list(ctx, eventFindBySeason, season)
}

// FindByLeagueID retrieves the events of a league ordered by season.
func (r *EventRepo) FindByLeagueID(ctx context.Context, leagueID int64) ([]*event.Event, error) {
	return r.list(ctx, eventFindByLeagueID, leagueID)
}

// FindSeasons returns the distinct seasons in ascending order.
func (r *EventRepo) FindSeasons(ctx context.Context) ([]int64, error) {
	seasons := make([]int64, 0)
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &seasons, eventFindSeasons); err != nil {
		return nil, fmt.Errorf("find seasons: %w", err)
	}
	return seasons, nil
}

func toEvent(rec *eventRecord) *event.Event {
	return &event.Event{
		ID:                rec.ID,
		Name:              rec.Name,
		LeagueID:          rec.LeagueID,
		Season:            rec.Season,
		Deadline:          rec.Deadline,
		LeagueManagerID:   rec.LeagueManagerID,
		CompetitionTypeID: rec.CompetitionTypeID,
		AuditFields:       rec.AuditFields,
	}
}

func fromEvent(e *event.Event) *eventRecord {
	return &eventRecord{
		ID:                e.ID,
		Name:              e.Name,
		LeagueID:          e.LeagueID,
		Season:            e.Season,
		Deadline:          e.Deadline,
		LeagueManagerID:   e.LeagueManagerID,
		CompetitionTypeID: e.CompetitionTypeID,
		AuditFields:       e.AuditFields,
	}
}
