package handlers

import (
	"bogenliga/internal/domain/club"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// NewClubHandler creates the handler for /v1/club.
func NewClubHandler(base *BaseHandler, service *club.Service) *CatalogHandler[*club.Club, dto.ClubRequest] {
	return NewCatalogHandler[*club.Club, dto.ClubRequest](base, CatalogHandlerConfig[*club.Club]{
		Service:  service,
		MapToDTO: func(c *club.Club) any { return dto.FromClub(c) },
	})
}
