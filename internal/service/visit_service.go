package service

import (
	"context"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"

	"github.com/google/uuid"
)

type ScheduleVisitInput struct {
	ListingID   uuid.UUID
	ScheduledAt *time.Time
}

type VisitService struct {
	visits   repository.VisitRepository
	listings repository.ListingRepository
}

func NewVisitService(visits repository.VisitRepository, listings repository.ListingRepository) *VisitService {
	return &VisitService{visits: visits, listings: listings}
}

func (s *VisitService) Schedule(ctx context.Context, userID uuid.UUID, input ScheduleVisitInput) (*entity.Visit, error) {
	listing, err := s.listings.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || listing.Status != entity.ListingStatusApproved {
		return nil, ErrListingNotFound
	}

	visit := &entity.Visit{
		UserID:      userID,
		ListingID:   input.ListingID,
		Status:      entity.VisitStatusPending,
		ScheduledAt: input.ScheduledAt,
	}
	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// Confirm transitions a visit pending -> confirmed. Ownership and state are
// enforced by the repository's guarded update; a zero-row update means the
// visit does not exist, belongs to someone else, or was already confirmed,
// and all three read the same from outside.
func (s *VisitService) Confirm(ctx context.Context, visitID, userID uuid.UUID) (*entity.Visit, error) {
	confirmed, err := s.visits.Confirm(ctx, visitID, userID)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrVisitNotConfirmable
	}
	return s.visits.FindByID(ctx, visitID)
}

func (s *VisitService) ListMine(ctx context.Context, userID uuid.UUID) ([]entity.Visit, error) {
	return s.visits.ListByUser(ctx, userID)
}
