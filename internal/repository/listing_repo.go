package repository

import (
	"context"
	"errors"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingFilter narrows public listing searches. Zero values mean "any".
type ListingFilter struct {
	Brand    string
	City     string
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	ListApproved(ctx context.Context, filter ListingFilter) ([]entity.Listing, error)
	ListByStatus(ctx context.Context, status entity.ListingStatus, limit, offset int) ([]entity.Listing, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) (bool, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &listing, err
}

func (r *listingRepository) ListApproved(ctx context.Context, filter ListingFilter) ([]entity.Listing, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", entity.ListingStatusApproved).
		Order("created_at DESC")

	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var listings []entity.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ListByStatus(ctx context.Context, status entity.ListingStatus, limit, offset int) ([]entity.Listing, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var listings []entity.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// SetStatus reports whether a row was actually updated, so callers can
// distinguish "no such listing" from a successful moderation action.
func (r *listingRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
