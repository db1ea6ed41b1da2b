// Package entity holds the building blocks shared by every persisted entity.
package entity

import (
	"context"
	"time"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// AuditFields is embedded in every entity. It mirrors the technical columns
// created_at_utc, created_by, last_modified_at_utc, last_modified_by and version.
type AuditFields struct {
	CreatedAtUTC      time.Time  `json:"createdAtUtc"`
	CreatedBy         int64      `json:"createdBy"`
	LastModifiedAtUTC *time.Time `json:"lastModifiedAtUtc,omitempty"`
	LastModifiedBy    *int64     `json:"lastModifiedBy,omitempty"`

	// Version starts at 0 and is incremented by every update.
	Version int64 `json:"version"`
}

// Audit returns the receiver so embedding structs expose their audit block.
func (a *AuditFields) Audit() *AuditFields {
	return a
}

// StampCreated prepares the audit block for an insert.
func (a *AuditFields) StampCreated(userID int64, now time.Time) {
	a.CreatedAtUTC = now.UTC()
	a.CreatedBy = userID
	a.LastModifiedAtUTC = nil
	a.LastModifiedBy = nil
	a.Version = 0
}

// StampModified prepares the audit block for an update. The version is not
// touched here: the expected version travels in the WHERE clause and the
// database increments it.
func (a *AuditFields) StampModified(userID int64, now time.Time) {
	ts := now.UTC()
	a.LastModifiedAtUTC = &ts
	a.LastModifiedBy = &userID
}
