// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/convert"
	"bogenliga/internal/core/entity"
)

// AuditResponse carries the technical columns of every entity.
type AuditResponse struct {
	Version           int64      `json:"version"`
	CreatedAtUTC      time.Time  `json:"createdAtUtc"`
	CreatedBy         int64      `json:"createdBy"`
	LastModifiedAtUTC *time.Time `json:"lastModifiedAtUtc,omitempty"`
	LastModifiedBy    *int64     `json:"lastModifiedBy,omitempty"`
}

// FromAudit maps the embedded audit block.
func FromAudit(a entity.AuditFields) AuditResponse {
	return AuditResponse{
		Version:           a.Version,
		CreatedAtUTC:      a.CreatedAtUTC,
		CreatedBy:         a.CreatedBy,
		LastModifiedAtUTC: a.LastModifiedAtUTC,
		LastModifiedBy:    a.LastModifiedBy,
	}
}

// versioned returns the audit block an update request expects to overwrite.
func versioned(version int64) entity.AuditFields {
	return entity.AuditFields{Version: version}
}

// requestDate parses a date sent by the client. A malformed value is the
// client's fault and surfaces as a validation error.
func requestDate(field, value string) (time.Time, error) {
	t, err := convert.ParseDate(field, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date").
			WithDetail("field", field).
			WithDetail("value", value).
			WithCause(err)
	}
	return t, nil
}

// requestTimestamp accepts an RFC 3339 timestamp or a plain date.
func requestTimestamp(field, value string) (time.Time, error) {
	if t, err := convert.ParseTimestamp(field, value); err == nil {
		return t, nil
	}
	return requestDate(field, value)
}

// SeasonsResponse lists distinct seasons.
type SeasonsResponse struct {
	Seasons []int64 `json:"seasons"`
}
