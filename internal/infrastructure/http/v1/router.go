package v1

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/security"
	"bogenliga/internal/infrastructure/http/v1/handlers"
	"bogenliga/internal/infrastructure/http/v1/middleware"
	"bogenliga/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Services are the domain components behind the routes
	Services Services

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Health answers readiness probes; nil disables /health/ready
	Health handlers.Pinger

	// Metrics records request metrics and serves /metrics; optional
	Metrics *middleware.Metrics

	// Logger for request logging
	Logger *logger.Logger

	Version     string
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	health := router.Group("/health")
	{
		healthHandler := handlers.NewHealthHandler(cfg.Health, cfg.Version)
		health.GET("/live", healthHandler.Live)
		if cfg.Health != nil {
			health.GET("/ready", healthHandler.Ready)
		}
	}

	base := handlers.NewBaseHandler()
	v1 := router.Group("/v1")

	authHandler := handlers.NewAuthHandler(base, cfg.Services.Auth)
	v1.POST("/user/signin", authHandler.SignIn)

	protected := v1.Group("")
	protected.Use(middleware.Auth(cfg.JWTValidator)) // 1. Validate JWT
	protected.Use(middleware.UserContext())          // 2. Expose the caller to the domain layer

	protected.GET("/user/me", authHandler.Me)

	registerMasterDataRoutes(protected, base, cfg.Services)
	registerClubRoutes(protected, base, cfg.Services)
	registerCompetitionRoutes(protected, base, cfg.Services)
	registerSystemRoutes(protected, base, cfg.Services)

	return router
}

var readDefault = anyOf(security.CanReadDefault, security.CanReadMasterData)

// registerMasterDataRoutes registers regions and leagues.
func registerMasterDataRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	perms := RoutePermissions{
		Read:   readDefault,
		Create: anyOf(security.CanModifyMasterData),
		Update: anyOf(security.CanModifyMasterData),
		Delete: anyOf(security.CanDeleteMasterData),
	}

	// --- REGIONS ---
	{
		handler := handlers.NewRegionHandler(base, s.Region)
		group := rg.Group("/region")
		group.GET("/type/:type", middleware.RequireAnyPermission(perms.Read...), handler.ListByType)
		RegisterCatalogRoutes(group, handler, perms)
	}

	// --- LEAGUES ---
	RegisterCatalogRoutes(rg.Group("/league"), handlers.NewLeagueHandler(base, s.League), perms)
}

// registerClubRoutes registers clubs, teams and members. Writes accept the
// scoped CAN_MODIFY_MY_VEREIN; the services narrow it to the caller's club.
func registerClubRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	// --- CLUBS ---
	RegisterCatalogRoutes(rg.Group("/club"), handlers.NewClubHandler(base, s.Club), RoutePermissions{
		Read:   readDefault,
		Create: anyOf(security.CanModifyClub),
		Update: anyOf(security.CanModifyClub, security.CanModifyMyClub),
		Delete: anyOf(security.CanModifyClub),
	})

	// --- TEAMS ---
	{
		handler := handlers.NewTeamHandler(base, s.Team)
		group := rg.Group("/team")
		group.GET("/club/:clubId", middleware.RequireAnyPermission(readDefault...), handler.ByClub())
		group.GET("/event/:eventId", middleware.RequireAnyPermission(readDefault...), handler.ByEvent())
		group.POST("/copy/:lastEventId/:currentEventId", middleware.RequireAnyPermission(security.CanCreateTeam, security.CanModifyMyClub), handler.Copy)
		RegisterCatalogRoutes(group, handler, RoutePermissions{
			Read:   readDefault,
			Create: anyOf(security.CanCreateTeam, security.CanModifyMyClub),
			Update: anyOf(security.CanModifyTeam, security.CanModifyMyClub),
			Delete: anyOf(security.CanModifyTeam, security.CanModifyMyClub),
		})
	}

	// --- MEMBERS ---
	{
		handler := handlers.NewMemberHandler(base, s.Member)
		group := rg.Group("/member")
		group.GET("/club/:clubId", middleware.RequireAnyPermission(readDefault...), handler.ByClub())
		modify := anyOf(security.CanModifyMember, security.CanModifyMyClub)
		RegisterCatalogRoutes(group, handler, RoutePermissions{
			Read: readDefault, Create: modify, Update: modify, Delete: modify,
		})
	}
}

// registerCompetitionRoutes registers events, score sheets and statistics.
func registerCompetitionRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	read := middleware.RequireAnyPermission(readDefault...)

	// --- EVENTS ---
	{
		handler := handlers.NewEventHandler(base, s.Event)
		group := rg.Group("/event")
		group.GET("/seasons", read, handler.Seasons)
		group.GET("/season/:season", read, handler.BySeason())
		group.GET("/league/:leagueId", read, handler.ByLeague())
		group.GET("/manager/:userId", read, handler.ByLeagueManager())
		modify := anyOf(security.CanModifyEvent)
		RegisterCatalogRoutes(group, handler, RoutePermissions{
			Read: readDefault, Create: modify, Update: modify, Delete: modify,
		})
	}

	// --- SCORE SHEETS ---
	{
		handler := handlers.NewScoreSheetHandler(base, s.ScoreSheet)
		group := rg.Group("/scoresheet")
		group.GET("/key/:competitionId/:matchNo/:teamId/:endNo/:memberId", read, handler.ByKey)
		group.GET("/match/:matchId", read, handler.ByMatch())
		group.GET("/team/:teamId", read, handler.ByTeam())
		group.GET("/team/:teamId/match/:matchId", read, handler.ByTeamAndMatch())
		group.GET("/member/:memberId", read, handler.ByMember())
		group.GET("/member/:memberId/team/:teamId", read, handler.ByMemberAndTeam())
		group.GET("/competition/:competitionId", read, handler.ByCompetition())
		modify := anyOf(security.CanModifyScores)
		RegisterCatalogRoutes(group, handler, RoutePermissions{
			Read: readDefault, Create: modify, Update: modify, Delete: modify,
		})
	}

	// --- STATISTICS ---
	{
		handler := handlers.NewStatisticsHandler(base, s.Statistics)
		group := rg.Group("/statistics")
		group.GET("/byEvent/:id", read, handler.ByEvent)
		group.GET("/byEvent/:id/club/:clubId", read, handler.ByEventAndClub)
	}
}

// registerSystemRoutes registers configuration and the change log.
func registerSystemRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	readSystem := middleware.RequirePermission(security.CanReadSystemData)
	modifySystem := middleware.RequirePermission(security.CanModifySystemData)

	// --- CONFIGURATION ---
	{
		handler := handlers.NewConfigurationHandler(base, s.Configuration)
		group := rg.Group("/configuration")
		group.GET("", readSystem, handler.List)
		group.GET("/:key", readSystem, handler.Get)
		group.POST("", modifySystem, handler.Create)
		group.PUT("/:key", modifySystem, handler.Update)
		group.DELETE("/:key", modifySystem, handler.Delete)
	}

	// --- CHANGE LOG ---
	if s.ChangeLog != nil {
		handler := handlers.NewChangeLogHandler(base, s.ChangeLog)
		rg.GET("/changelog/:entity/:id", readSystem, handler.History)
	}
}
