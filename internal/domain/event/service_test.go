package event

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain/domaintest"
)

type memoryRepo struct {
	*domaintest.Memory[Event, *Event]
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{domaintest.NewMemory[Event, *Event]("event", func(e *Event, id int64) { e.ID = id })}
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*Event, error) {
	return m.Get(id)
}

func (m *memoryRepo) FindByLeagueManagerID(_ context.Context, userID int64) ([]*Event, error) {
	return m.Filter(func(e *Event) bool { return e.LeagueManagerID == userID }), nil
}

func (m *memoryRepo) FindBySeason(_ context.Context, season int64) ([]*Event, error) {
	return m.Filter(func(e *Event) bool { return e.Season == season }), nil
}

func (m *memoryRepo) FindByLeagueID(_ context.Context, leagueID int64) ([]*Event, error) {
	return m.Filter(func(e *Event) bool { return e.LeagueID == leagueID }), nil
}

func (m *memoryRepo) FindSeasons(context.Context) ([]int64, error) {
	var seasons []int64
	for _, e := range m.Filter(nil) {
		if !slices.Contains(seasons, e.Season) {
			seasons = append(seasons, e.Season)
		}
	}
	slices.Sort(seasons)
	return seasons, nil
}

func newEvent(league, season int64) *Event {
	return &Event{
		Name:              "Liga",
		LeagueID:          league,
		Season:            season,
		Deadline:          time.Date(int(season), 1, 15, 0, 0, 0, 0, time.UTC),
		LeagueManagerID:   4,
		CompetitionTypeID: 1,
	}
}

func TestService_RejectsSecondEventPerLeagueAndSeason(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	ctx := domaintest.UserContext(1, 0)

	_, err := svc.Create(ctx, newEvent(3, 2024))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newEvent(3, 2024))
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Create(ctx, newEvent(3, 2025))
	assert.NoError(t, err)
	_, err = svc.Create(ctx, newEvent(4, 2024))
	assert.NoError(t, err)
}

func TestService_UpdateDoesNotConflictWithItself(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	ctx := domaintest.UserContext(1, 0)

	first, err := svc.Create(ctx, newEvent(3, 2024))
	require.NoError(t, err)
	second, err := svc.Create(ctx, newEvent(3, 2025))
	require.NoError(t, err)

	first.Name = "Landesliga"
	_, err = svc.Update(ctx, first)
	require.NoError(t, err)

	second.Season = 2024
	_, err = svc.Update(ctx, second)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_Finders(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)
	ctx := domaintest.UserContext(1, 0)

	for _, e := range []*Event{newEvent(1, 2025), newEvent(1, 2024), newEvent(2, 2024)} {
		_, err := svc.Create(ctx, e)
		require.NoError(t, err)
	}

	seasons, err := svc.FindSeasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2024, 2025}, seasons)

	bySeason, err := svc.FindBySeason(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, bySeason, 2)

	byLeague, err := svc.FindByLeagueID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byLeague, 2)

	byManager, err := svc.FindByLeagueManagerID(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, byManager, 3)

	_, err = svc.FindByLeagueID(ctx, -2)
	assert.True(t, apperror.IsValidation(err))
}

func TestEvent_ValidateRequiresDeadline(t *testing.T) {
	e := newEvent(1, 2024)
	e.Deadline = time.Time{}
	assert.True(t, apperror.IsValidation(e.Validate(context.Background())))
}
