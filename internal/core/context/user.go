// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext contains authenticated user information taken from verified token claims.
type UserContext struct {
	UserID      int64
	Email       string
	ClubID      int64 // 0 when the user is not attached to a club
	Permissions []string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or -1 when unauthenticated.
func GetUserID(ctx context.Context) int64 {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return -1
}

// HasPermission reports whether the user holds the permission.
func (u *UserContext) HasPermission(permission string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// BelongsToClub reports whether the user is attached to the given club.
func (u *UserContext) BelongsToClub(clubID int64) bool {
	return u != nil && u.ClubID != 0 && u.ClubID == clubID
}
