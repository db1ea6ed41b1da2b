package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/club"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	clubTable = "club"
	clubID    = "club_id"
)

type clubRecord struct {
	ID          int64
	Name        string
	Identifier  string
	RegionID    int64
	Website     *string
	Description *string
	entity.AuditFields
}

var clubConfig = newConfig(EntityConfig[clubRecord]{
	Entity:       "club",
	Table:        clubTable,
	Keys:         []string{clubID},
	GeneratedKey: true,
	Audit:        func(r *clubRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(clubID, func(r *clubRecord) *int64 { return &r.ID }),
	Col("club_name", func(r *clubRecord) *string { return &r.Name }),
	Col("club_identifier", func(r *clubRecord) *string { return &r.Identifier }),
	Col("club_region_id", func(r *clubRecord) *int64 { return &r.RegionID }),
	Col("club_website", func(r *clubRecord) **string { return &r.Website }),
	Col("club_description", func(r *clubRecord) **string { return &r.Description }),
)

var (
	clubFindAll  = query.SelectAll(clubTable).OrderBy(clubID).Compose()
	clubFindByID = query.SelectAll(clubTable).WhereEquals(clubID).Compose()
)

// ClubRepo implements club.Repository.
type ClubRepo struct {
	*mappedRepo[clubRecord, *club.Club]
}

// NewClubRepo creates a new club repository.
func NewClubRepo(db postgres.QuerierProvider) *ClubRepo {
	return &ClubRepo{newMappedRepo(db, clubConfig, clubFindAll, toClub, fromClub)}
}

// FindByID retrieves a club by id.
func (r *ClubRepo) FindByID(ctx context.Context, id int64) (*club.Club, error) {
	return r.one(ctx, clubFindByID, id)
}

func toClub(rec *clubRecord) *club.Club {
	return &club.Club{
		ID:          rec.ID,
		Name:        rec.Name,
		Identifier:  rec.Identifier,
		RegionID:    rec.RegionID,
		Website:     rec.Website,
		Description: rec.Description,
		AuditFields: rec.AuditFields,
	}
}

func fromClub(c *club.Club) *clubRecord {
	return &clubRecord{
		ID:          c.ID,
		Name:        c.Name,
		Identifier:  c.Identifier,
		RegionID:    c.RegionID,
		Website:     c.Website,
		Description: c.Description,
		AuditFields: c.AuditFields,
	}
}
