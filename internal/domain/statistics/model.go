// Package statistics aggregates score sheets into per-archer figures.
package statistics

import (
	"github.com/shopspring/decimal"
)

// AveragePlaces is the number of decimal places of arrow averages.
const AveragePlaces = 2

// MemberTotals are the raw sums for one member shooting for one team.
type MemberTotals struct {
	MemberID  int64  `db:"member_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	ClubID    int64  `db:"club_id"`
	TeamID    int64  `db:"team_id"`
	Matches   int64  `db:"matches"`
	Ends      int64  `db:"ends"`
	Arrows    int64  `db:"arrows"`
	Total     int64  `db:"total"`
}

// MemberStatistics adds the arrow average to MemberTotals.
type MemberStatistics struct {
	MemberTotals
	Average decimal.Decimal
}

// Average returns total/arrows rounded half-up to AveragePlaces.
// No arrows yields zero.
func Average(total, arrows int64) decimal.Decimal {
	if arrows == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(total).
		DivRound(decimal.NewFromInt(arrows), AveragePlaces+4).
		Round(AveragePlaces)
}
