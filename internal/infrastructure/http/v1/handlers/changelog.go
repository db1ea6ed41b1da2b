package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// ChangeLogHandler serves /v1/changelog.
type ChangeLogHandler struct {
	*BaseHandler
	history domain.ChangeHistory
}

// NewChangeLogHandler creates a new change log handler.
func NewChangeLogHandler(base *BaseHandler, history domain.ChangeHistory) *ChangeLogHandler {
	return &ChangeLogHandler{BaseHandler: base, history: history}
}

// History handles GET /v1/changelog/:entity/:id?limit=n.
func (h *ChangeLogHandler) History(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	entries, err := h.history.History(c.Request.Context(), c.Param("entity"), c.Param("id"), limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.ChangeEntry{}
	}
	h.OK(c, entries)
}
