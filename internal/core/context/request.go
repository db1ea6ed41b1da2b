package context

import "context"

// Request identifies one API call. The ids appear in log lines and in the
// details of 500 responses so an operator can find the matching log entry.
type Request struct {
	ID      string
	TraceID string
	Route   string
}

type requestKey struct{}

// WithRequest stores r in ctx.
func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// RequestFrom returns the request stored by WithRequest.
func RequestFrom(ctx context.Context) (Request, bool) {
	r, ok := ctx.Value(requestKey{}).(Request)
	return r, ok
}

// RequestID returns the request id or "".
func RequestID(ctx context.Context) string {
	r, _ := RequestFrom(ctx)
	return r.ID
}
