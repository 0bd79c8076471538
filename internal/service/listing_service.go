package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/brand"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateListingInput struct {
	Brand       string
	Title       string
	Description string
	Price       float64
	Currency    string
	City        string
	Country     string
	Images      []string
}

type ListingService struct {
	listings repository.ListingRepository
	brands   *brand.Catalog
}

func NewListingService(listings repository.ListingRepository, brands *brand.Catalog) *ListingService {
	return &ListingService{listings: listings, brands: brands}
}

// Create inserts a seller submission. New listings always start pending;
// only an admin moderation action makes them publicly visible.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, input CreateListingInput) (*entity.Listing, error) {
	if strings.TrimSpace(input.Title) == "" || input.Price <= 0 {
		return nil, ErrInvalidInput
	}
	brandKey := strings.ToLower(strings.TrimSpace(input.Brand))
	if _, ok := s.brands.Get(brandKey); !ok {
		return nil, ErrInvalidInput
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "BRL"
	}

	images := datatypes.JSON([]byte("[]"))
	if len(input.Images) > 0 {
		encoded, err := json.Marshal(input.Images)
		if err != nil {
			return nil, err
		}
		images = datatypes.JSON(encoded)
	}

	listing := &entity.Listing{
		OwnerID:     ownerID,
		Brand:       brandKey,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		City:        strings.TrimSpace(input.City),
		Country:     strings.TrimSpace(input.Country),
		Images:      images,
		Status:      entity.ListingStatusPending,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Search(ctx context.Context, filter repository.ListingFilter) ([]entity.Listing, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.listings.ListApproved(ctx, filter)
}

// Get returns an approved listing to anyone. Pending and rejected listings
// are visible only to their owner or an admin; everyone else gets not-found
// rather than a hint that the record exists.
func (s *ListingService) Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, viewerRole entity.UserRole) (*entity.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.Status == entity.ListingStatusApproved {
		return listing, nil
	}
	if viewerRole == entity.UserRoleAdmin {
		return listing, nil
	}
	if viewerID != nil && *viewerID == listing.OwnerID {
		return listing, nil
	}
	return nil, ErrListingNotFound
}

func (s *ListingService) ListPending(ctx context.Context, limit, offset int) ([]entity.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.listings.ListByStatus(ctx, entity.ListingStatusPending, limit, offset)
}

func (s *ListingService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entity.ListingStatusApproved)
}

func (s *ListingService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entity.ListingStatusRejected)
}

func (s *ListingService) setStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	updated, err := s.listings.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return ErrListingNotFound
	}
	return nil
}
