package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/team"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// TeamHandler serves /v1/team.
type TeamHandler struct {
	*CatalogHandler[*team.Team, dto.TeamRequest]
	service *team.Service
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(base *BaseHandler, service *team.Service) *TeamHandler {
	return &TeamHandler{
		CatalogHandler: NewCatalogHandler[*team.Team, dto.TeamRequest](base, CatalogHandlerConfig[*team.Team]{
			Service:  service,
			MapToDTO: func(t *team.Team) any { return dto.FromTeam(t) },
		}),
		service: service,
	}
}

// ByClub handles GET /v1/team/club/:clubId.
func (h *TeamHandler) ByClub() gin.HandlerFunc {
	return h.ListBy("clubId", h.service.FindByClubID)
}

// ByEvent handles GET /v1/team/event/:eventId.
func (h *TeamHandler) ByEvent() gin.HandlerFunc {
	return h.ListBy("eventId", h.service.FindByEventID)
}

// Copy handles POST /v1/team/copy/:lastEventId/:currentEventId.
func (h *TeamHandler) Copy(c *gin.Context) {
	last, ok := h.PathID(c, "lastEventId")
	if !ok {
		return
	}
	current, ok := h.PathID(c, "currentEventId")
	if !ok {
		return
	}

	copied, err := h.service.CopyFromEvent(c.Request.Context(), last, current)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, mapAll(copied, dto.FromTeam))
}
