package security

import (
	"context"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
)

// ScopeCheck describes one mutating request against a club-owned resource.
type ScopeCheck struct {
	// Blanket is valid across all clubs.
	Blanket Permission

	// Scoped is only valid for resources owned by the caller's club.
	Scoped Permission

	// OrgIDs are the owning club ids the request touches: the stored owner
	// and, for updates, the owner named in the request. All must match.
	OrgIDs []int64

	// MovesGrouping is set when the request changes the top-level grouping
	// of the resource (a team's event, a member's club).
	MovesGrouping bool
}

// Grant is the caller's standing for one ScopeCheck. It is never persisted.
type Grant struct {
	Blanket      bool
	ScopedForOrg bool
}

// EvaluateGrant computes the grant from the caller's claims.
func EvaluateGrant(user *appctx.UserContext, chk ScopeCheck) Grant {
	g := Grant{Blanket: chk.Blanket != "" && user.HasPermission(string(chk.Blanket))}
	if chk.Scoped == "" || !user.HasPermission(string(chk.Scoped)) || len(chk.OrgIDs) == 0 {
		return g
	}
	g.ScopedForOrg = true
	for _, org := range chk.OrgIDs {
		if !user.BelongsToClub(org) {
			g.ScopedForOrg = false
			break
		}
	}
	return g
}

// Allows applies the two-tier rule to a grant.
func (g Grant) Allows(movesGrouping bool) bool {
	if g.Blanket {
		return true
	}
	return g.ScopedForOrg && !movesGrouping
}

// Authorize evaluates chk against the user in ctx. It reads the claims on
// every call; nothing is cached between requests.
func Authorize(ctx context.Context, chk ScopeCheck) error {
	user := appctx.GetUser(ctx)
	if user == nil {
		return apperror.NewUnauthorized("authentication required")
	}
	if EvaluateGrant(user, chk).Allows(chk.MovesGrouping) {
		return nil
	}

	required := []string{}
	if chk.Blanket != "" {
		required = append(required, string(chk.Blanket))
	}
	if chk.Scoped != "" {
		required = append(required, string(chk.Scoped))
	}
	err := apperror.NewPermissionDenied(required...)
	if chk.MovesGrouping {
		err = err.WithDetail("reason", "grouping change requires "+string(chk.Blanket))
	}
	return err
}

// Require returns PermissionDenied unless the caller holds perm.
func Require(ctx context.Context, perm Permission) error {
	user := appctx.GetUser(ctx)
	if user == nil {
		return apperror.NewUnauthorized("authentication required")
	}
	if !user.HasPermission(string(perm)) {
		return apperror.NewPermissionDenied(string(perm))
	}
	return nil
}
