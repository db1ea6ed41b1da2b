package dto

import (
	"bogenliga/internal/core/convert"
	"bogenliga/internal/domain/event"
)

// EventRequest is the body of POST and PUT /v1/event.
type EventRequest struct {
	Name              string `json:"name"`
	LeagueID          int64  `json:"leagueId"`
	Season            int64  `json:"season"`
	Deadline          string `json:"deadline"` // YYYY-MM-DD or RFC 3339
	LeagueManagerID   int64  `json:"leagueManagerId"`
	CompetitionTypeID int64  `json:"competitionTypeId"`
	Version           int64  `json:"version"`
}

// ToDomain maps the request onto an event with the given id.
func (r EventRequest) ToDomain(id int64) (*event.Event, error) {
	e := &event.Event{
		ID:                id,
		Name:              r.Name,
		LeagueID:          r.LeagueID,
		Season:            r.Season,
		LeagueManagerID:   r.LeagueManagerID,
		CompetitionTypeID: r.CompetitionTypeID,
		AuditFields:       versioned(r.Version),
	}
	if r.Deadline != "" {
		deadline, err := requestTimestamp("deadline", r.Deadline)
		if err != nil {
			return nil, err
		}
		e.Deadline = deadline
	}
	return e, nil
}

// EventResponse is an event as returned by the API.
type EventResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	LeagueID          int64  `json:"leagueId"`
	Season            int64  `json:"season"`
	Deadline          string `json:"deadline"`
	LeagueManagerID   int64  `json:"leagueManagerId"`
	CompetitionTypeID int64  `json:"competitionTypeId"`
	AuditResponse
}

// FromEvent maps an event.
func FromEvent(e *event.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		LeagueID:          e.LeagueID,
		Season:            e.Season,
		Deadline:          convert.FormatDate(e.Deadline),
		LeagueManagerID:   e.LeagueManagerID,
		CompetitionTypeID: e.CompetitionTypeID,
		AuditResponse:     FromAudit(e.AuditFields),
	}
}
