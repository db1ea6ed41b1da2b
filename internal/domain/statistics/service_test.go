package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
)

type fakeRepo struct {
	totals []MemberTotals
	club   *int64
}

func (f *fakeRepo) TotalsByEvent(_ context.Context, _ int64, clubID *int64) ([]MemberTotals, error) {
	f.club = clubID
	return f.totals, nil
}

func TestAverage(t *testing.T) {
	tests := []struct {
		total, arrows int64
		want          string
	}{
		{0, 0, "0"},
		{57, 6, "9.5"},
		{53, 6, "8.83"},
		{55, 6, "9.17"},
		{1, 8, "0.13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Average(tt.total, tt.arrows).String(), "%d/%d", tt.total, tt.arrows)
	}
}

func TestService_ByEventAndClub(t *testing.T) {
	repo := &fakeRepo{totals: []MemberTotals{
		{MemberID: 1, ClubID: 4, Ends: 2, Arrows: 6, Total: 53},
	}}
	svc := NewService(repo)

	stats, err := svc.ByEventAndClub(context.Background(), 3, 4)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "8.83", stats[0].Average.StringFixed(AveragePlaces))
	require.NotNil(t, repo.club)
	assert.Equal(t, int64(4), *repo.club)

	_, err = svc.ByEvent(context.Background(), -1)
	assert.True(t, apperror.IsValidation(err))
}
