package dto

import "bogenliga/internal/domain/team"

// TeamRequest is the body of POST and PUT /v1/team.
type TeamRequest struct {
	ClubID    int64 `json:"clubId"`
	Number    int64 `json:"number"`
	EventID   int64 `json:"eventId"`
	SortOrder int64 `json:"sortOrder"`
	Version   int64 `json:"version"`
}

// ToDomain maps the request onto a team with the given id.
func (r TeamRequest) ToDomain(id int64) (*team.Team, error) {
	return &team.Team{
		ID:          id,
		ClubID:      r.ClubID,
		Number:      r.Number,
		EventID:     r.EventID,
		SortOrder:   r.SortOrder,
		AuditFields: versioned(r.Version),
	}, nil
}

// TeamResponse is a team as returned by the API.
type TeamResponse struct {
	ID        int64 `json:"id"`
	ClubID    int64 `json:"clubId"`
	Number    int64 `json:"number"`
	EventID   int64 `json:"eventId"`
	SortOrder int64 `json:"sortOrder"`
	AuditResponse
}

// FromTeam maps a team.
func FromTeam(t *team.Team) TeamResponse {
	return TeamResponse{
		ID:            t.ID,
		ClubID:        t.ClubID,
		Number:        t.Number,
		EventID:       t.EventID,
		SortOrder:     t.SortOrder,
		AuditResponse: FromAudit(t.AuditFields),
	}
}
