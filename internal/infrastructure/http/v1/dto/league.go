package dto

import (
	"bogenliga/internal/core/convert"
	"bogenliga/internal/domain/league"
)

// LeagueRequest is the body of POST and PUT /v1/league.
type LeagueRequest struct {
	Name      string `json:"name"`
	RegionID  int64  `json:"regionId"`
	ParentID  int64  `json:"parentId"`
	ManagerID int64  `json:"managerId"`
	Version   int64  `json:"version"`
}

// ToDomain maps the request onto a league with the given id.
func (r LeagueRequest) ToDomain(id int64) (*league.League, error) {
	return &league.League{
		ID:          id,
		Name:        r.Name,
		RegionID:    r.RegionID,
		ParentID:    convert.NullableID(r.ParentID),
		ManagerID:   convert.NullableID(r.ManagerID),
		AuditFields: versioned(r.Version),
	}, nil
}

// LeagueResponse is a league as returned by the API.
type LeagueResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RegionID  int64  `json:"regionId"`
	ParentID  int64  `json:"parentId"`
	ManagerID int64  `json:"managerId"`
	AuditResponse
}

// FromLeague maps a league.
func FromLeague(l *league.League) LeagueResponse {
	return LeagueResponse{
		ID:            l.ID,
		Name:          l.Name,
		RegionID:      l.RegionID,
		ParentID:      convert.IDOrZero(l.ParentID),
		ManagerID:     convert.IDOrZero(l.ManagerID),
		AuditResponse: FromAudit(l.AuditFields),
	}
}
