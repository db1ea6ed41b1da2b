package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/domain/scoresheet"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// ScoreSheetHandler serves /v1/scoresheet.
type ScoreSheetHandler struct {
	*CatalogHandler[*scoresheet.ScoreSheet, dto.ScoreSheetRequest]
	service *scoresheet.Service
}

// NewScoreSheetHandler creates a new score sheet handler.
func NewScoreSheetHandler(base *BaseHandler, service *scoresheet.Service) *ScoreSheetHandler {
	return &ScoreSheetHandler{
		CatalogHandler: NewCatalogHandler[*scoresheet.ScoreSheet, dto.ScoreSheetRequest](base, CatalogHandlerConfig[*scoresheet.ScoreSheet]{
			Service:  service,
			MapToDTO: func(s *scoresheet.ScoreSheet) any { return dto.FromScoreSheet(s) },
		}),
		service: service,
	}
}

// ByKey handles GET /v1/scoresheet/key/:competitionId/:matchNo/:teamId/:endNo/:memberId.
func (h *ScoreSheetHandler) ByKey(c *gin.Context) {
	var key scoresheet.NaturalKey
	for _, p := range []struct {
		name string
		dst  *int64
	}{
		{"competitionId", &key.CompetitionID},
		{"matchNo", &key.MatchNo},
		{"teamId", &key.TeamID},
		{"endNo", &key.EndNo},
		{"memberId", &key.MemberID},
	} {
		v, ok := h.PathID(c, p.name)
		if !ok {
			return
		}
		*p.dst = v
	}

	sheet, err := h.service.FindByKey(c.Request.Context(), key)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromScoreSheet(sheet))
}

// ByMatch handles GET /v1/scoresheet/match/:matchId.
func (h *ScoreSheetHandler) ByMatch() gin.HandlerFunc {
	return h.ListBy("matchId", h.service.FindByMatchID)
}

// ByTeam handles GET /v1/scoresheet/team/:teamId.
func (h *ScoreSheetHandler) ByTeam() gin.HandlerFunc {
	return h.ListBy("teamId", h.service.FindByTeamID)
}

// ByMember handles GET /v1/scoresheet/member/:memberId.
func (h *ScoreSheetHandler) ByMember() gin.HandlerFunc {
	return h.ListBy("memberId", h.service.FindByMemberID)
}

// ByCompetition handles GET /v1/scoresheet/competition/:competitionId.
func (h *ScoreSheetHandler) ByCompetition() gin.HandlerFunc {
	return h.ListBy("competitionId", h.service.FindByCompetitionID)
}

// ByTeamAndMatch handles GET /v1/scoresheet/team/:teamId/match/:matchId.
func (h *ScoreSheetHandler) ByTeamAndMatch() gin.HandlerFunc {
	return h.ListByPair("teamId", "matchId", h.service.FindByTeamAndMatch)
}

// ByMemberAndTeam handles GET /v1/scoresheet/member/:memberId/team/:teamId.
func (h *ScoreSheetHandler) ByMemberAndTeam() gin.HandlerFunc {
	return h.ListByPair("memberId", "teamId", h.service.FindByMemberAndTeam)
}
