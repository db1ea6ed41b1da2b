// Package auth_repo provides the PostgreSQL user store used by sign-in.
package auth_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain/auth"
	"bogenliga/internal/infrastructure/storage/postgres"
)

const userColumns = `user_id, user_email, user_password_hash, user_club_id, user_active,
	user_failed_logins, user_locked_until, user_last_login_at`

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	db  postgres.QuerierProvider
	now func() time.Time
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db postgres.QuerierProvider) *UserRepo {
	return &UserRepo{db: db, now: time.Now}
}

// FindByEmail retrieves an active or inactive user by e-mail address.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user WHERE user_email = $1`

	var u auth.User
	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), &u, query, email); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// Create inserts a user with its creation audit fields.
func (r *UserRepo) Create(ctx context.Context, u *auth.User, actingUserID int64) (*auth.User, error) {
	query := `
		INSERT INTO app_user (
			user_email, user_password_hash, user_club_id, user_active,
			created_at_utc, created_by, version
		) VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING ` + userColumns

	var created auth.User
	err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), &created, query,
		u.Email, u.PasswordHash, u.ClubID, u.Active, r.now().UTC(), actingUserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperror.NewDuplicate("user", "email", u.Email)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// LoadPermissions returns the distinct permission names of the user's roles.
func (r *UserRepo) LoadPermissions(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT DISTINCT p.permission_name
		FROM user_role ur
		JOIN role_permission rp ON rp.role_id = ur.role_id
		JOIN permission p ON p.permission_id = rp.permission_id
		WHERE ur.user_id = $1
		ORDER BY p.permission_name
	`

	perms := make([]string, 0)
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &perms, query, userID); err != nil {
		return nil, fmt.Errorf("load permissions: %w", err)
	}
	return perms, nil
}

// AssignRole links the user to the role with the given name.
func (r *UserRepo) AssignRole(ctx context.Context, userID int64, role string) error {
	query := `
		INSERT INTO user_role (user_id, role_id)
		SELECT $1, role_id FROM role WHERE role_name = $2
		ON CONFLICT DO NOTHING
	`

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, query, userID, role)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.db.GetQuerier(ctx).
			QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM role WHERE role_name = $1)`, role).
			Scan(&exists)
		if err != nil {
			return fmt.Errorf("check role: %w", err)
		}
		if !exists {
			return apperror.NewNotFound("role", role)
		}
	}
	return nil
}

// SaveLoginState stores the login counters of u.
func (r *UserRepo) SaveLoginState(ctx context.Context, u *auth.User) error {
	query := `
		UPDATE app_user SET
			user_failed_logins = $2,
			user_locked_until = $3,
			user_last_login_at = $4
		WHERE user_id = $1
	`

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, query,
		u.ID, u.FailedLoginAttempts, u.LockedUntil, u.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("update login state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", u.ID)
	}
	return nil
}
