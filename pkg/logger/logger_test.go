package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appctx "bogenliga/internal/core/context"
)

func TestWithContextAddsRequestFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{zap.New(core).Sugar()}

	ctx := appctx.WithRequest(context.Background(), appctx.Request{ID: "r-1", TraceID: "t-1", Route: "/v1/team/:id"})
	ctx = appctx.WithUser(ctx, &appctx.UserContext{UserID: 3, ClubID: 11})

	l.WithContext(ctx).Infow("hello", "k", "v")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, int64(3), fields["user_id"])
	assert.Equal(t, int64(11), fields["club_id"])
	assert.Equal(t, "v", fields["k"])
}

func TestFromContextUsesAttachedLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), &Logger{zap.New(core).Sugar()})

	Info(ctx, "attached")
	Debug(ctx, "filtered")

	assert.Equal(t, 1, logs.FilterMessage("attached").Len())
	assert.Equal(t, 0, logs.FilterMessage("filtered").Len())
}

func TestNewFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "nonsense", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.NotNil(t, l)
}
