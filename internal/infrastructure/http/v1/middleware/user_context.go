package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "bogenliga/internal/core/context"
)

// UserContext copies the caller into the request context, where services
// read the acting user id and the scoping rule reads permissions.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := Caller(c); user != nil {
			c.Request = c.Request.WithContext(appctx.WithUser(c.Request.Context(), user))
		}
		c.Next()
	}
}
