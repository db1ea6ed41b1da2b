package handlers

import (
	"bogenliga/internal/domain/league"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// NewLeagueHandler creates the handler for /v1/league.
func NewLeagueHandler(base *BaseHandler, service *league.Service) *CatalogHandler[*league.League, dto.LeagueRequest] {
	return NewCatalogHandler[*league.League, dto.LeagueRequest](base, CatalogHandlerConfig[*league.League]{
		Service:  service,
		MapToDTO: func(l *league.League) any { return dto.FromLeague(l) },
	})
}
