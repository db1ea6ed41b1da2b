package v1

import (
	"bogenliga/internal/domain"
	"bogenliga/internal/domain/auth"
	"bogenliga/internal/domain/club"
	"bogenliga/internal/domain/configuration"
	"bogenliga/internal/domain/event"
	"bogenliga/internal/domain/league"
	"bogenliga/internal/domain/member"
	"bogenliga/internal/domain/region"
	"bogenliga/internal/domain/scoresheet"
	"bogenliga/internal/domain/statistics"
	"bogenliga/internal/domain/team"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/auth_repo"
	"bogenliga/internal/infrastructure/storage/postgres/catalog_repo"
	"bogenliga/internal/infrastructure/storage/postgres/report_repo"
)

// Services are the domain components the router exposes.
type Services struct {
	Region        *region.Service
	Club          *club.Service
	League        *league.Service
	Event         *event.Service
	Team          *team.Service
	Member        *member.Service
	ScoreSheet    *scoresheet.Service
	Configuration *configuration.Service
	Statistics    *statistics.Service
	Auth          *auth.Service
	ChangeLog     domain.ChangeHistory
}

// NewServices wires the PostgreSQL repositories into the domain components.
// Every write records its change through changeLog in the same transaction.
func NewServices(txm *postgres.TxManager, changeLog *postgres.ChangeLog, jwtService *auth.JWTService, authConfig auth.ServiceConfig) Services {
	return Services{
		Region:        region.NewService(catalog_repo.NewRegionRepo(txm), txm, changeLog),
		Club:          club.NewService(catalog_repo.NewClubRepo(txm), txm, changeLog),
		League:        league.NewService(catalog_repo.NewLeagueRepo(txm), txm, changeLog),
		Event:         event.NewService(catalog_repo.NewEventRepo(txm), txm, changeLog),
		Team:          team.NewService(catalog_repo.NewTeamRepo(txm), txm, changeLog),
		Member:        member.NewService(catalog_repo.NewMemberRepo(txm), txm, changeLog),
		ScoreSheet:    scoresheet.NewService(catalog_repo.NewScoreSheetRepo(txm), txm, changeLog),
		Configuration: configuration.NewService(catalog_repo.NewConfigurationRepo(txm), txm, changeLog),
		Statistics:    statistics.NewService(report_repo.NewStatisticsRepo(txm)),
		Auth:          auth.NewService(auth_repo.NewUserRepo(txm), txm, jwtService, authConfig),
		ChangeLog:     changeLog,
	}
}
