package catalog_repo

import (
	"context"
	"time"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/member"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	memberTable  = "member"
	memberID     = "member_id"
	memberClubID = "member_club_id"
)

type memberRecord struct {
	ID           int64
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Nationality  string
	MemberNumber string
	ClubID       int64
	UserID       *int64
	entity.AuditFields
}

var memberConfig = newConfig(EntityConfig[memberRecord]{
	Entity:       "member",
	Table:        memberTable,
	Keys:         []string{memberID},
	GeneratedKey: true,
	Audit:        func(r *memberRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(memberID, func(r *memberRecord) *int64 { return &r.ID }),
	Col("member_first_name", func(r *memberRecord) *string { return &r.FirstName }),
	Col("member_last_name", func(r *memberRecord) *string { return &r.LastName }),
	TimeCol("member_birth_date", func(r *memberRecord) *time.Time { return &r.BirthDate }),
	Col("member_nationality", func(r *memberRecord) *string { return &r.Nationality }),
	Col("member_number", func(r *memberRecord) *string { return &r.MemberNumber }),
	Col(memberClubID, func(r *memberRecord) *int64 { return &r.ClubID }),
	Col("member_user_id", func(r *memberRecord) **int64 { return &r.UserID }),
)

var (
	memberFindAll      = query.SelectAll(memberTable).OrderBy(memberID).Compose()
	memberFindByID     = query.SelectAll(memberTable).WhereEquals(memberID).Compose()
	memberFindByClubID = query.SelectAll(memberTable).WhereEquals(memberClubID).OrderBy("member_last_name", "member_first_name").Compose()
)

// MemberRepo implements member.Repository.
type MemberRepo struct {
	*mappedRepo[memberRecord, *member.Member]
}

// NewMemberRepo creates a new member repository.
func NewMemberRepo(db postgres.QuerierProvider) *MemberRepo {
	return &MemberRepo{newMappedRepo(db, memberConfig, memberFindAll, toMember, fromMember)}
}

// FindByID retrieves a member by id.
func (r *MemberRepo) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	return r.one(ctx, memberFindByID, id)
}

// FindByClubID retrieves the members of a club ordered by name.
func (r *MemberRepo) FindByClubID(ctx context.Context, clubID int64) ([]*member.Member, error) {
	return r.list(ctx, memberFindByClubID, clubID)
}

func toMember(rec *memberRecord) *member.Member {
	return &member.Member{
		ID:           rec.ID,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		BirthDate:    rec.BirthDate,
		Nationality:  rec.Nationality,
		MemberNumber: rec.MemberNumber,
		ClubID:       rec.ClubID,
		UserID:       rec.UserID,
		AuditFields:  rec.AuditFields,
	}
}

func fromMember(m *member.Member) *memberRecord {
	return &memberRecord{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		BirthDate:    m.BirthDate,
		Nationality:  m.Nationality,
		MemberNumber: m.MemberNumber,
		ClubID:       m.ClubID,
		UserID:       m.UserID,
		AuditFields:  m.AuditFields,
	}
}
