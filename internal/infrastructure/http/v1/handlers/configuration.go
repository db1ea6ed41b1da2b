package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/configuration"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// ConfigurationHandler serves /v1/configuration, keyed by name instead of id.
type ConfigurationHandler struct {
	*BaseHandler
	service *configuration.Service
}

// NewConfigurationHandler creates a new configuration handler.
func NewConfigurationHandler(base *BaseHandler, service *configuration.Service) *ConfigurationHandler {
	return &ConfigurationHandler{BaseHandler: base, service: service}
}

// List handles GET /v1/configuration.
func (h *ConfigurationHandler) List(c *gin.Context) {
	items, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, mapAll(items, dto.FromConfiguration))
}

// Get handles GET /v1/configuration/:key.
func (h *ConfigurationHandler) Get(c *gin.Context) {
	item, err := h.service.FindByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromConfiguration(item))
}

// Create handles POST /v1/configuration.
func (h *ConfigurationHandler) Create(c *gin.Context) {
	var req dto.ConfigurationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToDomain(""))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromConfiguration(created))
}

// Update handles PUT /v1/configuration/:key.
func (h *ConfigurationHandler) Update(c *gin.Context) {
	var req dto.ConfigurationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), req.ToDomain(c.Param("key")))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromConfiguration(updated))
}

// Delete handles DELETE /v1/configuration/:key.
func (h *ConfigurationHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteByKey(c.Request.Context(), c.Param("key")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
