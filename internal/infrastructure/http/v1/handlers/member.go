package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/member"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// MemberHandler serves /v1/member.
type MemberHandler struct {
	*CatalogHandler[*member.Member, dto.MemberRequest]
	service *member.Service
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(base *BaseHandler, service *member.Service) *MemberHandler {
	return &MemberHandler{
		CatalogHandler: NewCatalogHandler[*member.Member, dto.MemberRequest](base, CatalogHandlerConfig[*member.Member]{
			Service:  service,
			MapToDTO: func(m *member.Member) any { return dto.FromMember(m) },
		}),
		service: service,
	}
}

// ByClub handles GET /v1/member/club/:clubId.
func (h *MemberHandler) ByClub() gin.HandlerFunc {
	return h.ListBy("clubId", h.service.FindByClubID)
}
