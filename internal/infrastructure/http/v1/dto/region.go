package dto

import (
	"bogenliga/internal/core/convert"
	"bogenliga/internal/domain/region"
)

// RegionRequest is the body of POST and PUT /v1/region.
type RegionRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Type      string `json:"type"`
	ParentID  int64  `json:"parentId"`
	Version   int64  `json:"version"`
}

// ToDomain maps the request onto a region with the given id.
func (r RegionRequest) ToDomain(id int64) (*region.Region, error) {
	return &region.Region{
		ID:          id,
		Name:        r.Name,
		ShortName:   r.ShortName,
		Type:        region.Type(r.Type),
		ParentID:    convert.NullableID(r.ParentID),
		AuditFields: versioned(r.Version),
	}, nil
}

// RegionResponse is a region as returned by the API.
type RegionResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Type       string `json:"type"`
	ParentID   int64  `json:"parentId"`
	ParentName string `json:"parentName,omitempty"`
	AuditResponse
}

// FromRegion maps a region.
func FromRegion(r *region.Region) RegionResponse {
	return RegionResponse{
		ID:            r.ID,
		Name:          r.Name,
		ShortName:     r.ShortName,
		Type:          string(r.Type),
		ParentID:      convert.IDOrZero(r.ParentID),
		ParentName:    r.ParentName,
		AuditResponse: FromAudit(r.AuditFields),
	}
}
