package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
)

const callerKey = "caller"

// JWTValidator verifies access tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*appctx.UserContext, error)
}

// Auth answers requests without a valid bearer token with 401. The
// caller is kept in the gin context until UserContext moves it on.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		user, err := validator.ValidateToken(token)
		if err != nil {
			_ = c.Error(apperror.NewUnauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(callerKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", apperror.NewUnauthorized("missing authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", apperror.NewUnauthorized("authorization header must be 'Bearer <token>'")
	}
	return token, nil
}

// Caller returns the user stored by Auth, or nil on public routes.
func Caller(c *gin.Context) *appctx.UserContext {
	if v, ok := c.Get(callerKey); ok {
		if user, ok := v.(*appctx.UserContext); ok {
			return user
		}
	}
	return nil
}
