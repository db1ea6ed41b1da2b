package dto

import "bogenliga/internal/domain/scoresheet"

// ScoreSheetRequest is the body of POST and PUT /v1/scoresheet.
type ScoreSheetRequest struct {
	CompetitionID int64   `json:"competitionId"`
	MatchID       int64   `json:"matchId"`
	MatchNo       int64   `json:"matchNo"`
	TeamID        int64   `json:"teamId"`
	MemberID      int64   `json:"memberId"`
	EndNo         int64   `json:"endNo"`
	Arrows        []int64 `json:"arrows"`
	Version       int64   `json:"version"`
}

// ToDomain maps the request onto a score sheet with the given id.
func (r ScoreSheetRequest) ToDomain(id int64) (*scoresheet.ScoreSheet, error) {
	return &scoresheet.ScoreSheet{
		ID:            id,
		CompetitionID: r.CompetitionID,
		MatchID:       r.MatchID,
		MatchNo:       r.MatchNo,
		TeamID:        r.TeamID,
		MemberID:      r.MemberID,
		EndNo:         r.EndNo,
		Arrows:        r.Arrows,
		AuditFields:   versioned(r.Version),
	}, nil
}

// ScoreSheetResponse is a score sheet as returned by the API.
type ScoreSheetResponse struct {
	ID            int64   `json:"id"`
	CompetitionID int64   `json:"competitionId"`
	MatchID       int64   `json:"matchId"`
	MatchNo       int64   `json:"matchNo"`
	TeamID        int64   `json:"teamId"`
	MemberID      int64   `json:"memberId"`
	EndNo         int64   `json:"endNo"`
	Arrows        []int64 `json:"arrows"`
	Total         int64   `json:"total"`
	AuditResponse
}

// FromScoreSheet maps a score sheet.
func FromScoreSheet(s *scoresheet.ScoreSheet) ScoreSheetResponse {
	arrows := s.Arrows
	if arrows == nil {
		arrows = []int64{}
	}
	return ScoreSheetResponse{
		ID:            s.ID,
		CompetitionID: s.CompetitionID,
		MatchID:       s.MatchID,
		MatchNo:       s.MatchNo,
		TeamID:        s.TeamID,
		MemberID:      s.MemberID,
		EndNo:         s.EndNo,
		Arrows:        arrows,
		Total:         s.Total(),
		AuditResponse: FromAudit(s.AuditFields),
	}
}
