package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	appctx "bogenliga/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

// Trace assigns the request its ids. A client supplied X-Request-ID is kept
// when it is a UUID; anything else is replaced. The trace id is taken from an
// active OpenTelemetry span when there is one.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		req := appctx.Request{
			ID:      clientRequestID(c.GetHeader(HeaderRequestID)),
			TraceID: strings.ReplaceAll(uuid.NewString(), "-", ""),
			Route:   c.FullPath(),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			req.TraceID = sc.TraceID().String()
		}

		c.Request = c.Request.WithContext(appctx.WithRequest(ctx, req))
		c.Header(HeaderRequestID, req.ID)
		c.Header(HeaderTraceID, req.TraceID)

		c.Next()
	}
}

func clientRequestID(header string) string {
	if id, err := uuid.Parse(header); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
