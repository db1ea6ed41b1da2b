// Package region provides the region hierarchy (federation, state
// associations, districts, counties) that clubs and leagues belong to.
package region

import (
	"context"
	"fmt"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/convert"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Type is the level of a region in the hierarchy.
type Type string

const (
	TypeFederation Type = "BUNDESVERBAND"
	TypeState      Type = "LANDESVERBAND"
	TypeDistrict   Type = "BEZIRK"
	TypeCounty     Type = "KREIS"
)

var types = []Type{TypeFederation, TypeState, TypeDistrict, TypeCounty}

// ParseType accepts the type name in any letter case.
func ParseType(s string) (Type, error) {
	t := Type(convert.UpperEnum(s))
	for _, known := range types {
		if t == known {
			return t, nil
		}
	}
	return "", apperror.NewValidation(fmt.Sprintf("unknown region type %q", s)).
		WithDetail("field", "type").
		WithDetail("allowed", types)
}

// Region is one node of the region hierarchy.
type Region struct {
	ID        int64
	Name      string
	ShortName string
	Type      Type
	ParentID  *int64

	// ParentName is resolved on read and never stored.
	ParentName string

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (r *Region) Validate(ctx context.Context) error {
	if err := domain.FirstError(
		domain.RequireNonNegative("id", r.ID),
		domain.RequireNotBlank("name", r.Name),
		domain.RequireNotBlank("shortName", r.ShortName),
	); err != nil {
		return err
	}
	t, err := ParseType(string(r.Type))
	if err != nil {
		return err
	}
	r.Type = t

	if r.ParentID != nil {
		if err := domain.RequireNonNegative("parentId", *r.ParentID); err != nil {
			return err
		}
		if r.ID != 0 && *r.ParentID == r.ID {
			return apperror.NewValidation("region cannot be its own parent").
				WithDetail("field", "parentId")
		}
	}
	return nil
}

// EntityKey implements domain.Entity.
func (r *Region) EntityKey() any {
	return r.ID
}
