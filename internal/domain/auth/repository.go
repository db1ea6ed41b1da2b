package auth

import "context"

// UserRepository defines user storage operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User, actingUserID int64) (*User, error)

	// LoadPermissions returns the distinct permissions of the user's roles.
	LoadPermissions(ctx context.Context, userID int64) ([]string, error)

	// AssignRole links the user to the named role.
	AssignRole(ctx context.Context, userID int64, role string) error

	// SaveLoginState stores the login counters and lock of u.
	SaveLoginState(ctx context.Context, u *User) error
}
