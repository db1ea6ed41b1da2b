package dto

import "bogenliga/internal/domain/club"

// ClubRequest is the body of POST and PUT /v1/club.
type ClubRequest struct {
	Name        string  `json:"name"`
	Identifier  string  `json:"identifier"`
	RegionID    int64   `json:"regionId"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
	Version     int64   `json:"version"`
}

// ToDomain maps the request onto a club with the given id.
func (r ClubRequest) ToDomain(id int64) (*club.Club, error) {
	return &club.Club{
		ID:          id,
		Name:        r.Name,
		Identifier:  r.Identifier,
		RegionID:    r.RegionID,
		Website:     r.Website,
		Description: r.Description,
		AuditFields: versioned(r.Version),
	}, nil
}

// ClubResponse is a club as returned by the API.
type ClubResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Identifier  string  `json:"identifier"`
	RegionID    int64   `json:"regionId"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
	AuditResponse
}

// FromClub maps a club.
func FromClub(c *club.Club) ClubResponse {
	return ClubResponse{
		ID:            c.ID,
		Name:          c.Name,
		Identifier:    c.Identifier,
		RegionID:      c.RegionID,
		Website:       c.Website,
		Description:   c.Description,
		AuditResponse: FromAudit(c.AuditFields),
	}
}
