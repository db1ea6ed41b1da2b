package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/region"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	regionTable    = "region"
	regionID       = "region_id"
	regionName     = "region_name"
	regionShort    = "region_short_name"
	regionType     = "region_type"
	regionParentID = "region_parent_id"
)

type regionRecord struct {
	ID        int64
	Name      string
	ShortName string
	Type      string
	ParentID  *int64
	entity.AuditFields
}

var regionConfig = newConfig(EntityConfig[regionRecord]{
	Entity:       "region",
	Table:        regionTable,
	Keys:         []string{regionID},
	GeneratedKey: true,
	Audit:        func(r *regionRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(regionID, func(r *regionRecord) *int64 { return &r.ID }),
	Col(regionName, func(r *regionRecord) *string { return &r.Name }),
	Col(regionShort, func(r *regionRecord) *string { return &r.ShortName }),
	Col(regionType, func(r *regionRecord) *string { return &r.Type }),
	Col(regionParentID, func(r *regionRecord) **int64 { return &r.ParentID }),
)

var (
	regionFindAll    = query.SelectAll(regionTable).OrderBy(regionID).Compose()
	regionFindByID   = query.SelectAll(regionTable).WhereEquals(regionID).Compose()
	regionFindByType = query.SelectAll(regionTable).WhereEquals(regionType).OrderBy(regionName).Compose()
)

// RegionRepo implements region.Repository.
type RegionRepo struct {
	*mappedRepo[regionRecord, *region.Region]
}

// NewRegionRepo creates a new region repository.
func NewRegionRepo(db postgres.QuerierProvider) *RegionRepo {
	return &RegionRepo{newMappedRepo(db, regionConfig, regionFindAll, toRegion, fromRegion)}
}

// FindByID retrieves a region by id.
func (r *RegionRepo) FindByID(ctx context.Context, id int64) (*region.Region, error) {
	return r.one(ctx, regionFindByID, id)
}

// FindAllByType retrieves the regions of one type ordered by name.
func (r *RegionRepo) FindAllByType(ctx context.Context, t region.Type) ([]*region.Region, error) {
	return r.list(ctx, regionFindByType, string(t))
}

func toRegion(rec *regionRecord) *region.Region {
	return &region.Region{
		ID:          rec.ID,
		Name:        rec.Name,
		ShortName:   rec.ShortName,
		Type:        region.Type(rec.Type),
		ParentID:    rec.ParentID,
		AuditFields: rec.AuditFields,
	}
}

func fromRegion(r *region.Region) *regionRecord {
	return &regionRecord{
		ID:          r.ID,
		Name:        r.Name,
		ShortName:   r.ShortName,
		Type:        string(r.Type),
		ParentID:    r.ParentID,
		AuditFields: r.AuditFields,
	}
}
