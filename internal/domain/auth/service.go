package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/core/convert"
	"bogenliga/internal/core/tx"
	"bogenliga/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts  int
	LockDuration      time.Duration
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:  5,
		LockDuration:      15 * time.Minute,
		PasswordMinLength: 8,
	}
}

// Service signs users in and creates accounts.
type Service struct {
	users      UserRepository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
	now        func() time.Time
}

// NewService creates a new auth service.
func NewService(users UserRepository, txManager tx.Manager, jwtService *JWTService, config ServiceConfig) *Service {
	if txManager == nil {
		txManager = tx.Inline
	}
	return &Service{
		users:      users,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
		now:        time.Now,
	}
}

// SignIn verifies the credentials and issues an access token.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (*SignInResult, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, apperror.NewValidation("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	now := s.now()
	if err := user.CanLogin(now); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(now, s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.users.SaveLoginState(ctx, user); err != nil {
			logger.Warn(ctx, "failed to record failed login", "user_id", user.ID, "error", err)
		}
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	perms, err := s.users.LoadPermissions(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load permissions: %w", err)
	}
	user.Permissions = perms

	user.RecordSuccessfulLogin(now)
	if err := s.users.SaveLoginState(ctx, user); err != nil {
		return nil, fmt.Errorf("save login state: %w", err)
	}

	token, expiresAt, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user signed in", "user_id", user.ID)

	return &SignInResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// IssueToken signs an access token for user with its loaded permissions.
func (s *Service) IssueToken(user *User) (string, time.Time, error) {
	return s.jwtService.GenerateAccessToken(UserContextOf(user))
}

// IssueTokenFor signs a token for an existing active account without a
// password check. Operators use it from the admin command line.
func (s *Service) IssueTokenFor(ctx context.Context, email string) (*SignInResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, apperror.NewForbidden("account is disabled")
	}

	perms, err := s.users.LoadPermissions(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load permissions: %w", err)
	}
	user.Permissions = perms

	token, expiresAt, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &SignInResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// CreateUser stores a new account with a bcrypt password hash and assigns roles.
func (s *Service) CreateUser(ctx context.Context, email, password string, clubID int64, roles ...string) (*User, error) {
	if len(password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: string(hash),
		ClubID:       convert.NullableID(clubID),
		Active:       true,
	}
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	actingUserID := max(appctx.GetUserID(ctx), 0)

	var created *User
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.users.Create(ctx, user, actingUserID)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		for _, role := range roles {
			if err := s.users.AssignRole(ctx, created.ID, role); err != nil {
				return fmt.Errorf("assign role %s: %w", role, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", "user_id", created.ID, "roles", roles)
	return created, nil
}

// UserContextOf converts a loaded user to the claims carried in requests.
func UserContextOf(u *User) *appctx.UserContext {
	return &appctx.UserContext{
		UserID:      u.ID,
		Email:       u.Email,
		ClubID:      convert.IDOrZero(u.ClubID),
		Permissions: u.Permissions,
	}
}
