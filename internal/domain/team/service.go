package team

import (
	"context"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/security"
	"bogenliga/internal/core/tx"
	"bogenliga/internal/domain"
	"bogenliga/pkg/logger"
)

// Service provides business logic for teams.
type Service struct {
	*domain.CatalogService[*Team]
	repo Repository
}

// NewService creates a new team service.
func NewService(repo Repository, txm tx.Manager, changes domain.ChangeRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Team]{
		Repo:       repo,
		TxManager:  txm,
		Changes:    changes,
		EntityName: "team",
	})

	svc := &Service{CatalogService: base, repo: repo}

	base.Hooks().OnBeforeCreate(svc.authorizeCreate)
	base.Hooks().OnBeforeUpdate(svc.authorizeUpdate)
	base.Hooks().OnBeforeDelete(svc.authorizeDelete)

	return svc
}

// FindByID returns one team.
func (s *Service) FindByID(ctx context.Context, id int64) (*Team, error) {
	if err := domain.RequireNonNegative("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// FindByClubID returns the teams of a club.
func (s *Service) FindByClubID(ctx context.Context, clubID int64) ([]*Team, error) {
	if err := domain.RequireNonNegative("clubId", clubID); err != nil {
		return nil, err
	}
	return s.repo.FindByClubID(ctx, clubID)
}

// FindByEventID returns the teams registered for an event.
func (s *Service) FindByEventID(ctx context.Context, eventID int64) ([]*Team, error) {
	if err := domain.RequireNonNegative("eventId", eventID); err != nil {
		return nil, err
	}
	return s.repo.FindByEventID(ctx, eventID)
}

// DeleteByID removes the team with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	t, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, t)
}

// CopyFromEvent registers every team of lastEventID for currentEventID.
// CAN_CREATE_MANNSCHAFT copies all teams; CAN_MODIFY_MY_VEREIN alone copies
// only the teams of the caller's club. All copies are written in one
// transaction.
func (s *Service) CopyFromEvent(ctx context.Context, lastEventID, currentEventID int64) ([]*Team, error) {
	if err := domain.FirstError(
		domain.RequireNonNegative("lastEventId", lastEventID),
		domain.RequireNonNegative("currentEventId", currentEventID),
	); err != nil {
		return nil, err
	}
	if lastEventID == currentEventID {
		return nil, apperror.NewValidation("source and target event must differ")
	}
	blanket, err := s.authorizeCopy(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := domain.ActingUserID(ctx)
	if err != nil {
		return nil, err
	}

	copies := make([]*Team, 0)
	err = s.TxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		source, err := s.repo.FindByEventID(ctx, lastEventID)
		if err != nil {
			return err
		}
		for _, t := range source {
			c := &Team{
				ClubID:    t.ClubID,
				Number:    t.Number,
				EventID:   currentEventID,
				SortOrder: t.SortOrder,
			}
			if !blanket && s.authorizeCreate(ctx, c) != nil {
				continue
			}
			created, err := s.repo.Create(ctx, c, userID)
			if err != nil {
				return err
			}
			if err := s.Record(ctx, domain.ChangeCreate, userID, created); err != nil {
				return err
			}
			copies = append(copies, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "teams copied",
		"from_event", lastEventID,
		"to_event", currentEventID,
		"count", len(copies))
	return copies, nil
}

// authorizeCopy reports whether the caller copies with the blanket
// permission. Callers holding neither permission are denied.
func (s *Service) authorizeCopy(ctx context.Context) (bool, error) {
	if err := security.Require(ctx, security.CanCreateTeam); err == nil {
		return true, nil
	}
	if err := security.Require(ctx, security.CanModifyMyClub); err != nil {
		return false, apperror.NewPermissionDenied(security.Strings(security.CanCreateTeam, security.CanModifyMyClub)...)
	}
	return false, nil
}

func (s *Service) authorizeCreate(ctx context.Context, t *Team) error {
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket: security.CanCreateTeam,
		Scoped:  security.CanModifyMyClub,
		OrgIDs:  []int64{t.ClubID},
	})
}

// authorizeUpdate checks both the stored and the requested club, so a club
// administrator can neither edit nor take over another club's team. Moving
// a team to another event needs the blanket permission.
func (s *Service) authorizeUpdate(ctx context.Context, t *Team) error {
	stored, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket:       security.CanModifyTeam,
		Scoped:        security.CanModifyMyClub,
		OrgIDs:        []int64{stored.ClubID, t.ClubID},
		MovesGrouping: stored.EventID != t.EventID,
	})
}

func (s *Service) authorizeDelete(ctx context.Context, t *Team) error {
	return security.Authorize(ctx, security.ScopeCheck{
		Blanket: security.CanModifyTeam,
		Scoped:  security.CanModifyMyClub,
		OrgIDs:  []int64{t.ClubID},
	})
}
