package scoresheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain/domaintest"
)

type memoryRepo struct {
	*domaintest.Memory[ScoreSheet, *ScoreSheet]
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*ScoreSheet, error) {
	return m.Get(id)
}

func (m *memoryRepo) FindByKey(_ context.Context, key NaturalKey) (*ScoreSheet, error) {
	items := m.Filter(func(s *ScoreSheet) bool { return s.NaturalKey() == key })
	if len(items) == 0 {
		return nil, apperror.NewNotFound("score_sheet", key)
	}
	return items[0], nil
}

func (m *memoryRepo) where(keep func(*ScoreSheet) bool) ([]*ScoreSheet, error) {
	return m.Filter(keep), nil
}

func (m *memoryRepo) FindByMatchID(_ context.Context, id int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.MatchID == id })
}

func (m *memoryRepo) FindByTeamID(_ context.Context, id int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.TeamID == id })
}

func (m *memoryRepo) FindByMemberID(_ context.Context, id int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.MemberID == id })
}

func (m *memoryRepo) FindByTeamAndMatch(_ context.Context, teamID, matchID int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.TeamID == teamID && s.MatchID == matchID })
}

func (m *memoryRepo) FindByMemberAndTeam(_ context.Context, memberID, teamID int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.MemberID == memberID && s.TeamID == teamID })
}

func (m *memoryRepo) FindByCompetitionID(_ context.Context, id int64) ([]*ScoreSheet, error) {
	return m.where(func(s *ScoreSheet) bool { return s.CompetitionID == id })
}

func newService() *Service {
	repo := &memoryRepo{domaintest.NewMemory[ScoreSheet, *ScoreSheet]("score_sheet", func(s *ScoreSheet, id int64) { s.ID = id })}
	return NewService(repo, nil, nil)
}

func sheet(member, end int64, arrows ...int64) *ScoreSheet {
	return &ScoreSheet{CompetitionID: 1, MatchID: 11, MatchNo: 1, TeamID: 5, MemberID: member, EndNo: end, Arrows: arrows}
}

func TestScoreSheet_Validate(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, sheet(1, 1, 10, 9, 0).Validate(ctx))
	assert.True(t, apperror.IsValidation(sheet(1, 1, 11).Validate(ctx)))
	assert.True(t, apperror.IsValidation(sheet(1, 1, -1).Validate(ctx)))
	assert.True(t, apperror.IsValidation(sheet(-1, 1).Validate(ctx)))
	assert.True(t, apperror.IsValidation(sheet(1, 1, 1, 2, 3, 4, 5, 6, 7).Validate(ctx)))
	assert.Equal(t, int64(19), sheet(1, 1, 10, 9).Total())
}

func TestService_CreateFindByKey(t *testing.T) {
	svc := newService()
	ctx := domaintest.UserContext(1, 0)

	created, err := svc.Create(ctx, sheet(7, 2, 10, 8, 9))
	require.NoError(t, err)

	found, err := svc.FindByKey(ctx, created.NaturalKey())
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, []int64{10, 8, 9}, found.Arrows)

	_, err = svc.FindByKey(ctx, NaturalKey{CompetitionID: -1})
	assert.True(t, apperror.IsValidation(err))
}

func TestService_Lookups(t *testing.T) {
	svc := newService()
	ctx := domaintest.UserContext(1, 0)

	for _, s := range []*ScoreSheet{sheet(7, 1, 10), sheet(7, 2, 9), sheet(8, 1, 8)} {
		_, err := svc.Create(ctx, s)
		require.NoError(t, err)
	}

	byMember, err := svc.FindByMemberID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byMember, 2)

	byTeamMatch, err := svc.FindByTeamAndMatch(ctx, 5, 11)
	require.NoError(t, err)
	assert.Len(t, byTeamMatch, 3)

	byMemberTeam, err := svc.FindByMemberAndTeam(ctx, 8, 5)
	require.NoError(t, err)
	assert.Len(t, byMemberTeam, 1)

	byCompetition, err := svc.FindByCompetitionID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCompetition, 3)

	_, err = svc.FindByMatchID(ctx, -1)
	assert.True(t, apperror.IsValidation(err))
}
