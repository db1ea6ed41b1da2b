// Package scoresheet records the arrows shot by one member in one end of a match.
package scoresheet

import (
	"context"
	"fmt"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

const (
	MaxArrowScore   = 10
	MaxArrowsPerEnd = 6
)

// NaturalKey identifies a score sheet by competition, match, team, end and member.
type NaturalKey struct {
	CompetitionID int64
	MatchNo       int64
	TeamID        int64
	EndNo         int64
	MemberID      int64
}

// ScoreSheet is one end shot by one member.
type ScoreSheet struct {
	ID            int64
	CompetitionID int64
	MatchID       int64
	MatchNo       int64
	TeamID        int64
	MemberID      int64
	EndNo         int64
	Arrows        []int64

	entity.AuditFields
}

// NaturalKey returns the identifying tuple of s.
func (s *ScoreSheet) NaturalKey() NaturalKey {
	return NaturalKey{
		CompetitionID: s.CompetitionID,
		MatchNo:       s.MatchNo,
		TeamID:        s.TeamID,
		EndNo:         s.EndNo,
		MemberID:      s.MemberID,
	}
}

// Total is the sum of all arrow scores.
func (s *ScoreSheet) Total() int64 {
	var sum int64
	for _, a := range s.Arrows {
		sum += a
	}
	return sum
}

// Validate implements entity.Validatable.
func (s *ScoreSheet) Validate(ctx context.Context) error {
	if err := domain.FirstError(
		domain.RequireNonNegative("id", s.ID),
		s.NaturalKey().Validate(),
		domain.RequireNonNegative("matchId", s.MatchID),
	); err != nil {
		return err
	}
	if len(s.Arrows) > MaxArrowsPerEnd {
		return apperror.NewValidation(fmt.Sprintf("at most %d arrows per end", MaxArrowsPerEnd)).
			WithDetail("field", "arrows")
	}
	for i, a := range s.Arrows {
		if err := domain.RequireRange(fmt.Sprintf("arrows[%d]", i), a, 0, MaxArrowScore); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every component of k is non-negative.
func (k NaturalKey) Validate() error {
	return domain.FirstError(
		domain.RequireNonNegative("competitionId", k.CompetitionID),
		domain.RequireNonNegative("matchNo", k.MatchNo),
		domain.RequireNonNegative("teamId", k.TeamID),
		domain.RequireNonNegative("endNo", k.EndNo),
		domain.RequireNonNegative("memberId", k.MemberID),
	)
}

// EntityKey implements domain.Entity.
func (s *ScoreSheet) EntityKey() any {
	return s.ID
}
