package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/region"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// RegionHandler serves /v1/region.
type RegionHandler struct {
	*CatalogHandler[*region.Region, dto.RegionRequest]
	service *region.Service
}

// NewRegionHandler creates a new region handler.
func NewRegionHandler(base *BaseHandler, service *region.Service) *RegionHandler {
	return &RegionHandler{
		CatalogHandler: NewCatalogHandler[*region.Region, dto.RegionRequest](base, CatalogHandlerConfig[*region.Region]{
			Service:  service,
			MapToDTO: func(r *region.Region) any { return dto.FromRegion(r) },
		}),
		service: service,
	}
}

// ListByType handles GET /v1/region/type/:type.
func (h *RegionHandler) ListByType(c *gin.Context) {
	items, err := h.service.FindAllByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, mapAll(items, dto.FromRegion))
}
