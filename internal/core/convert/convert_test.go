package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
)

func TestParseTimestampNormalisesToUTC(t *testing.T) {
	ts, err := ParseTimestamp("createdAtUtc", "2024-05-01T14:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, 12, ts.Hour())
}

func TestParseTimestampMalformed(t *testing.T) {
	_, err := ParseTimestamp("createdAtUtc", "yesterday")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeConversion))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("deadline", "2024-10-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-10-31", FormatDate(d))

	_, err = ParseDate("deadline", "31.10.2024")
	assert.True(t, apperror.HasCode(err, apperror.CodeConversion))
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, NullableID(0))
	assert.Nil(t, NullableID(-3))
	require.NotNil(t, NullableID(5))
	assert.Equal(t, int64(5), IDOrZero(NullableID(5)))
	assert.Zero(t, IDOrZero(nil))
}

func TestUTCKeepsZero(t *testing.T) {
	assert.True(t, UTC(time.Time{}).IsZero())
	assert.Nil(t, UTCPtr(nil))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "KREIS", UpperEnum(" kreis "))
}
