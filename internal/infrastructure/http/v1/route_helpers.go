// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/security"
	"bogenliga/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for id-keyed entity handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RoutePermissions names the permissions gating each verb. A caller needs
// any one permission of the list.
type RoutePermissions struct {
	Read   []security.Permission
	Create []security.Permission
	Update []security.Permission
	Delete []security.Permission
}

// RegisterCatalogRoutes registers standard CRUD routes for an entity.
//
// Usage:
//
//	handler := handlers.NewClubHandler(base, services.Club)
//	RegisterCatalogRoutes(v1.Group("/club"), handler, RoutePermissions{...})
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, perms RoutePermissions) {
	group.GET("", middleware.RequireAnyPermission(perms.Read...), handler.List)
	group.POST("", middleware.RequireAnyPermission(perms.Create...), handler.Create)
	group.GET("/:id", middleware.RequireAnyPermission(perms.Read...), handler.Get)
	group.PUT("/:id", middleware.RequireAnyPermission(perms.Update...), handler.Update)
	group.DELETE("/:id", middleware.RequireAnyPermission(perms.Delete...), handler.Delete)
}

func anyOf(perms ...security.Permission) []security.Permission {
	return perms
}
