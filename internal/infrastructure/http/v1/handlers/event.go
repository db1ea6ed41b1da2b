package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/event"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// EventHandler serves /v1/event.
type EventHandler struct {
	*CatalogHandler[*event.Event, dto.EventRequest]
	service *event.Service
}

// NewEventHandler creates a new event handler.
func NewEventHandler(base *BaseHandler, service *event.Service) *EventHandler {
	return &EventHandler{
		CatalogHandler: NewCatalogHandler[*event.Event, dto.EventRequest](base, CatalogHandlerConfig[*event.Event]{
			Service:  service,
			MapToDTO: func(e *event.Event) any { return dto.FromEvent(e) },
		}),
		service: service,
	}
}

// Seasons handles GET /v1/event/seasons.
func (h *EventHandler) Seasons(c *gin.Context) {
	seasons, err := h.service.FindSeasons(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if seasons == nil {
		seasons = []int64{}
	}
	h.OK(c, dto.SeasonsResponse{Seasons: seasons})
}

// BySeason handles GET /v1/event/season/:season.
func (h *EventHandler) BySeason() gin.HandlerFunc {
	return h.ListBy("season", h.service.FindBySeason)
}

// ByLeague handles GET /v1/event/league/:leagueId.
func (h *EventHandler) ByLeague() gin.HandlerFunc {
	return h.ListBy("leagueId", h.service.FindByLeagueID)
}

// ByLeagueManager handles GET /v1/event/manager/:userId.
func (h *EventHandler) ByLeagueManager() gin.HandlerFunc {
	return h.ListBy("userId", h.service.FindByLeagueManagerID)
}
