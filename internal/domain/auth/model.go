// Package auth provides sign-in and token handling.
package auth

import (
	"context"
	"time"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain"
)

// User is a login account. Permissions are loaded from the user's roles.
type User struct {
	ID                  int64      `db:"user_id"`
	Email               string     `db:"user_email"`
	PasswordHash        string     `db:"user_password_hash"`
	ClubID              *int64     `db:"user_club_id"`
	Active              bool       `db:"user_active"`
	FailedLoginAttempts int        `db:"user_failed_logins"`
	LockedUntil         *time.Time `db:"user_locked_until"`
	LastLoginAt         *time.Time `db:"user_last_login_at"`

	Permissions []string `db:"-"`
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if err := domain.RequireNotBlank("email", u.Email); err != nil {
		return err
	}
	if u.ClubID != nil {
		return domain.RequireNonNegative("clubId", *u.ClubID)
	}
	return nil
}

// IsLocked returns true if the account is temporarily locked.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// CanLogin checks if the user may sign in at all.
func (u *User) CanLogin(now time.Time) error {
	if !u.Active {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked(now) {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failure counter and locks the account
// once maxAttempts is reached.
func (u *User) RecordFailedLogin(now time.Time, maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		until := now.Add(lockDuration)
		u.LockedUntil = &until
	}
}

// RecordSuccessfulLogin resets the failure counter.
func (u *User) RecordSuccessfulLogin(now time.Time) {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

// Credentials for sign-in.
type Credentials struct {
	Email    string
	Password string
}

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
