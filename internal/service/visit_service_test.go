package service

import (
	"context"
	"errors"
	"testing"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
)

func TestVisitService_Schedule(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown listing", func(t *testing.T) {
		svc := NewVisitService(newFakeVisitRepo(), newFakeListingRepo())
		_, err := svc.Schedule(context.Background(), userID, ScheduleVisitInput{ListingID: uuid.New()})
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("pending listing is not visitable", func(t *testing.T) {
		listings := newFakeListingRepo()
		listingID := seedListing(t, listings, entity.ListingStatusPending)
		svc := NewVisitService(newFakeVisitRepo(), listings)

		_, err := svc.Schedule(context.Background(), userID, ScheduleVisitInput{ListingID: listingID})
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("approved listing schedules pending visit", func(t *testing.T) {
		listings := newFakeListingRepo()
		listingID := seedListing(t, listings, entity.ListingStatusApproved)
		svc := NewVisitService(newFakeVisitRepo(), listings)

		visit, err := svc.Schedule(context.Background(), userID, ScheduleVisitInput{ListingID: listingID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if visit.ID == uuid.Nil {
			t.Fatal("expected generated visit id")
		}
		if visit.Status != entity.VisitStatusPending {
			t.Fatalf("expected pending status, got %s", visit.Status)
		}
		if visit.UserID != userID {
			t.Fatalf("expected visit owned by %s, got %s", userID, visit.UserID)
		}
	})
}

func TestVisitService_Confirm(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()

	setup := func(t *testing.T) (*VisitService, *fakeVisitRepo, uuid.UUID) {
		visits := newFakeVisitRepo()
		visit := &entity.Visit{UserID: userID, ListingID: listingID, Status: entity.VisitStatusPending}
		if err := visits.Create(context.Background(), visit); err != nil {
			t.Fatalf("seed visit: %v", err)
		}
		return NewVisitService(visits, newFakeListingRepo()), visits, visit.ID
	}

	t.Run("owner confirms pending visit", func(t *testing.T) {
		svc, _, visitID := setup(t)

		visit, err := svc.Confirm(context.Background(), visitID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if visit.Status != entity.VisitStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", visit.Status)
		}
		if !visit.UpdatedAt.After(visit.CreatedAt) && !visit.UpdatedAt.Equal(visit.CreatedAt) {
			t.Fatal("expected updated timestamp stamped")
		}
	})

	t.Run("wrong owner leaves record unchanged", func(t *testing.T) {
		svc, visits, visitID := setup(t)

		_, err := svc.Confirm(context.Background(), visitID, uuid.New())
		if !errors.Is(err, ErrVisitNotConfirmable) {
			t.Fatalf("expected ErrVisitNotConfirmable, got %v", err)
		}
		record, _ := visits.FindByID(context.Background(), visitID)
		if record.Status != entity.VisitStatusPending {
			t.Fatalf("expected record untouched, got status %s", record.Status)
		}
	})

	t.Run("unknown visit", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.Confirm(context.Background(), uuid.New(), userID)
		if !errors.Is(err, ErrVisitNotConfirmable) {
			t.Fatalf("expected ErrVisitNotConfirmable, got %v", err)
		}
	})

	t.Run("already confirmed visit is not confirmable again", func(t *testing.T) {
		svc, _, visitID := setup(t)
		if _, err := svc.Confirm(context.Background(), visitID, userID); err != nil {
			t.Fatalf("first confirm failed: %v", err)
		}
		_, err := svc.Confirm(context.Background(), visitID, userID)
		if !errors.Is(err, ErrVisitNotConfirmable) {
			t.Fatalf("expected ErrVisitNotConfirmable, got %v", err)
		}
	})
}

func seedListing(t *testing.T, listings *fakeListingRepo, status entity.ListingStatus) uuid.UUID {
	t.Helper()
	listing := &entity.Listing{
		OwnerID: uuid.New(),
		Brand:   "publimoveis",
		Title:   "Casa com quintal",
		Price:   350000,
		Status:  status,
	}
	if err := listings.Create(context.Background(), listing); err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	listings.listings[listing.ID].Status = status
	return listing.ID
}
