package dto

import (
	"bogenliga/internal/core/convert"
	"bogenliga/internal/domain/member"
)

// MemberRequest is the body of POST and PUT /v1/member.
type MemberRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BirthDate    string `json:"birthDate"` // YYYY-MM-DD
	Nationality  string `json:"nationality"`
	MemberNumber string `json:"memberNumber"`
	ClubID       int64  `json:"clubId"`
	UserID       int64  `json:"userId"`
	Version      int64  `json:"version"`
}

// ToDomain maps the request onto a member with the given id.
func (r MemberRequest) ToDomain(id int64) (*member.Member, error) {
	m := &member.Member{
		ID:           id,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Nationality:  r.Nationality,
		MemberNumber: r.MemberNumber,
		ClubID:       r.ClubID,
		UserID:       convert.NullableID(r.UserID),
		AuditFields:  versioned(r.Version),
	}
	if r.BirthDate != "" {
		birth, err := requestDate("birthDate", r.BirthDate)
		if err != nil {
			return nil, err
		}
		m.BirthDate = birth
	}
	return m, nil
}

// MemberResponse is a member as returned by the API.
type MemberResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BirthDate    string `json:"birthDate"`
	Nationality  string `json:"nationality"`
	MemberNumber string `json:"memberNumber"`
	ClubID       int64  `json:"clubId"`
	UserID       int64  `json:"userId"`
	AuditResponse
}

// FromMember maps a member.
func FromMember(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		BirthDate:     convert.FormatDate(m.BirthDate),
		Nationality:   m.Nationality,
		MemberNumber:  m.MemberNumber,
		ClubID:        m.ClubID,
		UserID:        convert.IDOrZero(m.UserID),
		AuditResponse: FromAudit(m.AuditFields),
	}
}
