package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/security"
	"bogenliga/internal/domain/domaintest"
)

type memoryRepo struct {
	*domaintest.Memory[Team, *Team]
}

func newMemoryRepo(teams ...*Team) *memoryRepo {
	repo := &memoryRepo{domaintest.NewMemory[Team, *Team]("team", func(t *Team, id int64) { t.ID = id })}
	repo.Seed(teams...)
	return repo
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*Team, error) {
	return m.Get(id)
}

func (m *memoryRepo) FindByClubID(_ context.Context, clubID int64) ([]*Team, error) {
	return m.Filter(func(t *Team) bool { return t.ClubID == clubID }), nil
}

func (m *memoryRepo) FindByEventID(_ context.Context, eventID int64) ([]*Team, error) {
	return m.Filter(func(t *Team) bool { return t.EventID == eventID }), nil
}

var (
	clubAdmin   = func(club int64) context.Context { return domaintest.UserContext(20, club, string(security.CanModifyMyClub)) }
	leagueAdmin = domaintest.UserContext(1, 0, string(security.CanCreateTeam), string(security.CanModifyTeam))
)

func TestService_CreateScoping(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		team    *Team
		allowed bool
	}{
		{"blanket any club", leagueAdmin, &Team{ClubID: 9, Number: 1, EventID: 3}, true},
		{"scoped own club", clubAdmin(9), &Team{ClubID: 9, Number: 1, EventID: 3}, true},
		{"scoped other club", clubAdmin(8), &Team{ClubID: 9, Number: 1, EventID: 3}, false},
		{"no permission", domaintest.UserContext(5, 9), &Team{ClubID: 9, Number: 1, EventID: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemoryRepo(), nil, nil)
			_, err := svc.Create(tt.ctx, tt.team)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperror.IsForbidden(err), "got %v", err)
			}
		})
	}
}

func TestService_ScopedUpdateMayNotChangeEvent(t *testing.T) {
	repo := newMemoryRepo(&Team{ID: 1, ClubID: 9, Number: 1, EventID: 3})
	svc := NewService(repo, nil, nil)

	team, err := svc.FindByID(clubAdmin(9), 1)
	require.NoError(t, err)

	team.SortOrder = 2
	updated, err := svc.Update(clubAdmin(9), team)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.SortOrder)

	updated.EventID = 4
	_, err = svc.Update(clubAdmin(9), updated)
	assert.True(t, apperror.IsForbidden(err))

	moved, err := svc.Update(leagueAdmin, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(4), moved.EventID)
	assert.Equal(t, int64(2), moved.Version)
}

func TestService_ScopedUpdateMayNotTakeOverTeam(t *testing.T) {
	repo := newMemoryRepo(&Team{ID: 1, ClubID: 7, Number: 1, EventID: 3})
	svc := NewService(repo, nil, nil)

	team, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	team.ClubID = 9

	_, err = svc.Update(clubAdmin(9), team)
	assert.True(t, apperror.IsForbidden(err))
}

func TestService_CopyFromEvent(t *testing.T) {
	repo := newMemoryRepo(
		&Team{ID: 1, ClubID: 7, Number: 1, EventID: 3, SortOrder: 1},
		&Team{ID: 2, ClubID: 8, Number: 2, EventID: 3, SortOrder: 2},
		&Team{ID: 3, ClubID: 8, Number: 1, EventID: 5},
	)
	svc := NewService(repo, nil, nil)

	copies, err := svc.CopyFromEvent(leagueAdmin, 3, 6)
	require.NoError(t, err)
	require.Len(t, copies, 2)
	for _, c := range copies {
		assert.Equal(t, int64(6), c.EventID)
		assert.Equal(t, int64(0), c.Version)
	}

	teams, err := svc.FindByEventID(leagueAdmin, 6)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	_, err = svc.CopyFromEvent(domaintest.UserContext(30, 0, string(security.CanModifyTeam)), 3, 7)
	assert.True(t, apperror.IsForbidden(err))

	_, err = svc.CopyFromEvent(leagueAdmin, 3, 3)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_CopyFromEventWithCreatePermission(t *testing.T) {
	repo := newMemoryRepo(
		&Team{ID: 1, ClubID: 7, Number: 1, EventID: 1},
		&Team{ID: 2, ClubID: 8, Number: 1, EventID: 1},
	)
	svc := NewService(repo, nil, nil)

	copies, err := svc.CopyFromEvent(domaintest.UserContext(1, 0, string(security.CanCreateTeam)), 1, 2)
	require.NoError(t, err)
	assert.Len(t, copies, 2)
}

func TestService_CopyFromEventScopedCopiesOwnClub(t *testing.T) {
	repo := newMemoryRepo(
		&Team{ID: 1, ClubID: 7, Number: 1, EventID: 1},
		&Team{ID: 2, ClubID: 8, Number: 1, EventID: 1},
		&Team{ID: 3, ClubID: 7, Number: 2, EventID: 1},
	)
	svc := NewService(repo, nil, nil)

	copies, err := svc.CopyFromEvent(clubAdmin(7), 1, 2)
	require.NoError(t, err)
	require.Len(t, copies, 2)
	for _, c := range copies {
		assert.Equal(t, int64(7), c.ClubID)
		assert.Equal(t, int64(2), c.EventID)
	}
}

func TestService_CreateNeedsCreatePermission(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	ctx := domaintest.UserContext(30, 0, string(security.CanModifyTeam))

	_, err := svc.Create(ctx, &Team{ClubID: 7, Number: 1, EventID: 1})
	assert.True(t, apperror.IsForbidden(err))
}

func TestService_DeleteScoped(t *testing.T) {
	repo := newMemoryRepo(&Team{ID: 1, ClubID: 7, Number: 1, EventID: 3})
	svc := NewService(repo, nil, nil)

	assert.True(t, apperror.IsForbidden(svc.DeleteByID(clubAdmin(8), 1)))
	require.NoError(t, svc.DeleteByID(clubAdmin(7), 1))

	_, err := svc.FindByID(context.Background(), 1)
	assert.True(t, apperror.IsNotFound(err))
}
