package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/statistics"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// StatisticsHandler serves /v1/statistics.
type StatisticsHandler struct {
	*BaseHandler
	service *statistics.Service
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(base *BaseHandler, service *statistics.Service) *StatisticsHandler {
	return &StatisticsHandler{BaseHandler: base, service: service}
}

// ByEvent handles GET /v1/statistics/byEvent/:id.
func (h *StatisticsHandler) ByEvent(c *gin.Context) {
	eventID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.service.ByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMemberStatistics(rows))
}

// ByEventAndClub handles GET /v1/statistics/byEvent/:id/club/:clubId.
func (h *StatisticsHandler) ByEventAndClub(c *gin.Context) {
	eventID, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	clubID, ok := h.PathID(c, "clubId")
	if !ok {
		return
	}

	rows, err := h.service.ByEventAndClub(c.Request.Context(), eventID, clubID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMemberStatistics(rows))
}
