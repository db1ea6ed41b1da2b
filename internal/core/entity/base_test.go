package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampCreated(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, loc)

	a := AuditFields{Version: 5, LastModifiedBy: new(int64)}
	a.StampCreated(9, now)

	assert.Equal(t, int64(9), a.CreatedBy)
	assert.Equal(t, time.UTC, a.CreatedAtUTC.Location())
	assert.True(t, a.CreatedAtUTC.Equal(now))
	assert.Zero(t, a.Version)
	assert.Nil(t, a.LastModifiedBy)
	assert.Nil(t, a.LastModifiedAtUTC)
}

func TestStampModifiedKeepsVersion(t *testing.T) {
	a := AuditFields{Version: 3}
	a.StampModified(4, time.Now())

	require.NotNil(t, a.LastModifiedBy)
	require.NotNil(t, a.LastModifiedAtUTC)
	assert.Equal(t, int64(4), *a.LastModifiedBy)
	assert.Equal(t, time.UTC, a.LastModifiedAtUTC.Location())
	assert.Equal(t, int64(3), a.Version)
}
