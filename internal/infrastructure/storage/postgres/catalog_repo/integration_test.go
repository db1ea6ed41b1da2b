package catalog_repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain/club"
	"bogenliga/internal/domain/event"
	"bogenliga/internal/domain/league"
	"bogenliga/internal/domain/member"
	"bogenliga/internal/domain/region"
	"bogenliga/internal/domain/scoresheet"
	"bogenliga/internal/domain/team"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/catalog_repo"
	"bogenliga/internal/infrastructure/storage/postgres/report_repo"
)

func startDatabase(t *testing.T) (*postgres.Pool, *postgres.TxManager) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bogenliga"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(wait.ForListeningPort("5432/tcp").WithStartupTimeout(2*time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{DSN: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool, postgres.NewTxManager(pool)
}

func TestPostgresIntegration(t *testing.T) {
	pool, txm := startDatabase(t)
	ctx := context.Background()
	const admin = int64(1)

	t.Run("schema matches column maps", func(t *testing.T) {
		verifier, db := postgres.NewPoolSchemaVerifier(pool)
		defer db.Close()
		require.NoError(t, verifier.Verify(ctx, catalog_repo.Tables()))
	})

	regions := catalog_repo.NewRegionRepo(txm)
	clubs := catalog_repo.NewClubRepo(txm)
	leagues := catalog_repo.NewLeagueRepo(txm)
	events := catalog_repo.NewEventRepo(txm)
	teams := catalog_repo.NewTeamRepo(txm)
	members := catalog_repo.NewMemberRepo(txm)
	sheets := catalog_repo.NewScoreSheetRepo(txm)

	federation, err := regions.Create(ctx, &region.Region{Name: "Deutscher Schützenbund", ShortName: "DSB", Type: region.TypeFederation}, admin)
	require.NoError(t, err)
	assert.NotZero(t, federation.ID)
	assert.Equal(t, int64(0), federation.Version)
	assert.Equal(t, admin, federation.CreatedBy)
	assert.Equal(t, time.UTC, federation.CreatedAtUTC.Location())

	t.Run("region update is versioned", func(t *testing.T) {
		stale := *federation
		federation.ShortName = "DSB e.V."
		updated, err := regions.Update(ctx, federation, admin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.Version)
		require.NotNil(t, updated.LastModifiedBy)
		federation = updated

		_, err = regions.Update(ctx, &stale, admin)
		assert.True(t, apperror.IsConcurrentModification(err))

		byType, err := regions.FindAllByType(ctx, region.TypeFederation)
		require.NoError(t, err)
		require.Len(t, byType, 1)
		assert.Equal(t, "DSB e.V.", byType[0].ShortName)
	})

	c, err := clubs.Create(ctx, &club.Club{Name: "BSC Stuttgart", Identifier: "WT-01", RegionID: federation.ID}, admin)
	require.NoError(t, err)

	t.Run("duplicate identifier", func(t *testing.T) {
		_, err := clubs.Create(ctx, &club.Club{Name: "Other", Identifier: "WT-01", RegionID: federation.ID}, admin)
		assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))
	})

	t.Run("referenced region cannot be deleted", func(t *testing.T) {
		err := regions.Delete(ctx, federation)
		assert.True(t, apperror.HasCode(err, apperror.CodeConflict))
	})

	l, err := leagues.Create(ctx, &league.League{Name: "Bundesliga", RegionID: federation.ID}, admin)
	require.NoError(t, err)

	deadline := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	e2023, err := events.Create(ctx, &event.Event{Name: "BL 23", LeagueID: l.ID, Season: 2023, Deadline: deadline, LeagueManagerID: 5, CompetitionTypeID: 1}, admin)
	require.NoError(t, err)
	_, err = events.Create(ctx, &event.Event{Name: "BL 24", LeagueID: l.ID, Season: 2024, Deadline: deadline, LeagueManagerID: 5, CompetitionTypeID: 1}, admin)
	require.NoError(t, err)

	t.Run("distinct seasons", func(t *testing.T) {
		seasons, err := events.FindSeasons(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{2023, 2024}, seasons)

		got, err := events.FindByID(ctx, e2023.ID)
		require.NoError(t, err)
		assert.True(t, deadline.Equal(got.Deadline))
	})

	tm, err := teams.Create(ctx, &team.Team{ClubID: c.ID, Number: 1, EventID: e2023.ID, SortOrder: 1}, admin)
	require.NoError(t, err)
	m, err := members.Create(ctx, &member.Member{
		FirstName: "Anna", LastName: "Schulz", BirthDate: time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC),
		Nationality: "D", MemberNumber: "100-1", ClubID: c.ID,
	}, admin)
	require.NoError(t, err)

	t.Run("score sheets and statistics", func(t *testing.T) {
		sheet := &scoresheet.ScoreSheet{CompetitionID: 1, MatchID: 11, MatchNo: 1, TeamID: tm.ID, MemberID: m.ID, EndNo: 1, Arrows: []int64{10, 9, 8}}
		created, err := sheets.Create(ctx, sheet, admin)
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 9, 8}, created.Arrows)

		_, err = sheets.Create(ctx, sheet, admin)
		assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))

		found, err := sheets.FindByKey(ctx, created.NaturalKey())
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		totals, err := report_repo.NewStatisticsRepo(txm).TotalsByEvent(ctx, e2023.ID, nil)
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.Equal(t, int64(27), totals[0].Total)
		assert.Equal(t, int64(3), totals[0].Arrows)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
			if _, err := teams.Create(ctx, &team.Team{ClubID: c.ID, Number: 2, EventID: e2023.ID}, admin); err != nil {
				return err
			}
			return apperror.NewValidation("abort")
		})
		require.Error(t, err)

		list, err := teams.FindByEventID(ctx, e2023.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := clubs.FindByID(ctx, 999999)
		assert.True(t, apperror.IsNotFound(err))
	})
}
