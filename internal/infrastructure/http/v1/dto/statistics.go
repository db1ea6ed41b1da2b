package dto

import "bogenliga/internal/domain/statistics"

// MemberStatisticsResponse is one row of an event statistic.
type MemberStatisticsResponse struct {
	MemberID  int64  `json:"memberId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ClubID    int64  `json:"clubId"`
	TeamID    int64  `json:"teamId"`
	Matches   int64  `json:"matches"`
	Ends      int64  `json:"ends"`
	Arrows    int64  `json:"arrows"`
	Total     int64  `json:"total"`
	Average   string `json:"average"`
}

// FromMemberStatistics maps statistics rows.
func FromMemberStatistics(rows []statistics.MemberStatistics) []MemberStatisticsResponse {
	out := make([]MemberStatisticsResponse, len(rows))
	for i, r := range rows {
		out[i] = MemberStatisticsResponse{
			MemberID:  r.MemberID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			ClubID:    r.ClubID,
			TeamID:    r.TeamID,
			Matches:   r.Matches,
			Ends:      r.Ends,
			Arrows:    r.Arrows,
			Total:     r.Total,
			Average:   r.Average.StringFixed(statistics.AveragePlaces),
		}
	}
	return out
}
