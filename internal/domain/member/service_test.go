package member

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/security"
	"bogenliga/internal/domain/domaintest"
)

type memoryRepo struct {
	*domaintest.Memory[Member, *Member]
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*Member, error) {
	return m.Get(id)
}

func (m *memoryRepo) FindByClubID(_ context.Context, clubID int64) ([]*Member, error) {
	return m.Filter(func(mem *Member) bool { return mem.ClubID == clubID }), nil
}

func newService() *Service {
	repo := &memoryRepo{domaintest.NewMemory[Member, *Member]("member", func(m *Member, id int64) { m.ID = id })}
	return NewService(repo, nil, nil)
}

func archer(club int64) *Member {
	return &Member{
		FirstName:    "Anna",
		LastName:     "Schütz",
		BirthDate:    time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Nationality:  "DE",
		MemberNumber: "WT-1234",
		ClubID:       club,
	}
}

func TestService_CreateAndFind(t *testing.T) {
	svc := newService()
	ctx := domaintest.UserContext(1, 0, string(security.CanModifyMember))

	created, err := svc.Create(ctx, archer(4))
	require.NoError(t, err)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.FirstName, found.FirstName)
	assert.Equal(t, created.BirthDate, found.BirthDate)
	assert.Equal(t, created.ClubID, found.ClubID)

	byClub, err := svc.FindByClubID(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, byClub, 1)
}

func TestService_ScopedMemberChanges(t *testing.T) {
	svc := newService()
	own := domaintest.UserContext(30, 4, string(security.CanModifyMyClub))
	foreign := domaintest.UserContext(31, 5, string(security.CanModifyMyClub))

	_, err := svc.Create(foreign, archer(4))
	assert.True(t, apperror.IsForbidden(err))

	created, err := svc.Create(own, archer(4))
	require.NoError(t, err)

	created.LastName = "Meier"
	updated, err := svc.Update(own, created)
	require.NoError(t, err)

	updated.ClubID = 5
	_, err = svc.Update(own, updated)
	assert.True(t, apperror.IsForbidden(err))

	assert.True(t, apperror.IsForbidden(svc.DeleteByID(foreign, created.ID)))
	assert.NoError(t, svc.DeleteByID(own, created.ID))
}

func TestMember_ValidateRequiresBirthDate(t *testing.T) {
	m := archer(1)
	m.BirthDate = time.Time{}
	assert.True(t, apperror.IsValidation(m.Validate(context.Background())))
}
