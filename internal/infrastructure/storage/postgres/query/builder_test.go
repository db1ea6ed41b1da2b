package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		builder Builder
		wantSQL string
	}{
		{
			name:    "find all ordered",
			builder: SelectAll("region").OrderBy("region_id"),
			wantSQL: "SELECT * FROM region ORDER BY region_id",
		},
		{
			name:    "find by id",
			builder: SelectAll("region").WhereEquals("region_id"),
			wantSQL: "SELECT * FROM region WHERE region_id = $1",
		},
		{
			name:    "find by type ordered by name",
			builder: SelectAll("region").WhereEquals("region_type").OrderBy("region_name"),
			wantSQL: "SELECT * FROM region WHERE region_type = $1 ORDER BY region_name",
		},
		{
			name:    "composite key",
			builder: SelectAll("score_sheet").WhereEquals("score_sheet_match_id").WhereEquals("score_sheet_team_id"),
			wantSQL: "SELECT * FROM score_sheet WHERE score_sheet_match_id = $1 AND score_sheet_team_id = $2",
		},
		{
			name:    "distinct column",
			builder: Select("event", "event_season").Distinct().OrderBy("event_season"),
			wantSQL: "SELECT DISTINCT event_season FROM event ORDER BY event_season",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSQL, tt.builder.Compose())
		})
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	b := SelectAll("region").OrderBy("region_id")
	first := b.Compose()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, b.Compose())
	}
	assert.Equal(t, first, SelectAll("region").OrderBy("region_id").Compose())
}

func TestBuilderCopiesShareNoState(t *testing.T) {
	base := SelectAll("team")
	byClub := base.WhereEquals("team_club_id")
	byEvent := base.WhereEquals("team_event_id")

	assert.Equal(t, "SELECT * FROM team", base.Compose())
	assert.Equal(t, "SELECT * FROM team WHERE team_club_id = $1", byClub.Compose())
	assert.Equal(t, "SELECT * FROM team WHERE team_event_id = $1", byEvent.Compose())
}

func TestComposeRejectsInvalidIdentifiers(t *testing.T) {
	_, err := SelectAll("region; DROP TABLE region").ToSQL()
	require.Error(t, err)

	_, err = SelectAll("region").WhereEquals("id = 1 OR 1").ToSQL()
	require.Error(t, err)

	assert.Panics(t, func() { SelectAll("Region").Compose() })
}
