package statistics

import "context"

// Repository loads aggregated score sheet data.
type Repository interface {
	// TotalsByEvent returns the totals of every member that shot for a team
	// of the event. A non-nil clubID restricts the result to that club.
	TotalsByEvent(ctx context.Context, eventID int64, clubID *int64) ([]MemberTotals, error)
}
