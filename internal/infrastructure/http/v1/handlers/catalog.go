package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// CatalogService is the service surface a CatalogHandler drives.
type CatalogService[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CatalogRequest is a request body that maps onto a domain value.
type CatalogRequest[T any] interface {
	ToDomain(id int64) (T, error)
}

// CatalogHandler provides generic HTTP handlers for id-keyed entities.
type CatalogHandler[T any, Req CatalogRequest[T]] struct {
	*BaseHandler
	service  CatalogService[T]
	mapToDTO func(T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T any] struct {
	Service  CatalogService[T]
	MapToDTO func(T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T any, Req CatalogRequest[T]](base *BaseHandler, cfg CatalogHandlerConfig[T]) *CatalogHandler[T, Req] {
	return &CatalogHandler[T, Req]{
		BaseHandler: base,
		service:     cfg.Service,
		mapToDTO:    cfg.MapToDTO,
	}
}

// List handles GET /{entity}.
func (h *CatalogHandler[T, Req]) List(c *gin.Context) {
	items, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, mapAll(items, h.mapToDTO))
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T, Req]) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(item))
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T, Req]) Create(c *gin.Context) {
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := req.ToDomain(0)
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), item)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, h.mapToDTO(created))
}

// Update handles PUT /{entity}/:id. The body carries the expected version.
func (h *CatalogHandler[T, Req]) Update(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := req.ToDomain(id)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), item)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id.
func (h *CatalogHandler[T, Req]) Delete(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// ListBy builds a GET handler listing the values found by one numeric path parameter.
func (h *CatalogHandler[T, Req]) ListBy(param string, find func(context.Context, int64) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.PathID(c, param)
		if !ok {
			return
		}

		items, err := find(c.Request.Context(), id)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, mapAll(items, h.mapToDTO))
	}
}

// ListByPair is ListBy for two numeric path parameters.
func (h *CatalogHandler[T, Req]) ListByPair(first, second string, find func(context.Context, int64, int64) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := h.PathID(c, first)
		if !ok {
			return
		}
		b, ok := h.PathID(c, second)
		if !ok {
			return
		}

		items, err := find(c.Request.Context(), a, b)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, mapAll(items, h.mapToDTO))
	}
}
