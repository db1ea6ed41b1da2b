package dto

import (
	"time"

	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/domain/auth"
)

// SignInRequest is the body of POST /v1/user/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r SignInRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

// UserResponse describes the signed-in user.
type UserResponse struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	ClubID      int64    `json:"clubId"`
	Permissions []string `json:"permissions"`
}

// SignInResponse carries the access token.
type SignInResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// FromSignIn maps a successful sign-in.
func FromSignIn(r *auth.SignInResult) SignInResponse {
	return SignInResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresAt:   r.ExpiresAt,
		User:        FromUserContext(auth.UserContextOf(r.User)),
	}
}

// FromUserContext maps the caller's verified claims.
func FromUserContext(u *appctx.UserContext) UserResponse {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return UserResponse{
		ID:          u.UserID,
		Email:       u.Email,
		ClubID:      u.ClubID,
		Permissions: perms,
	}
}
