package domaintest

import (
	"context"

	appctx "bogenliga/internal/core/context"
)

// UserContext returns a context carrying a user with the given club and permissions.
func UserContext(userID, clubID int64, perms ...string) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:      userID,
		ClubID:      clubID,
		Permissions: perms,
	})
}
