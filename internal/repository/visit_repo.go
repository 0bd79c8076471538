package repository

import (
	"context"
	"errors"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Visit, error)
	Confirm(ctx context.Context, visitID, userID uuid.UUID) (bool, error)
	HasConfirmed(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visit entity.Visit
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visit).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &visit, err
}

func (r *visitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// Confirm is a single guarded update: ownership and the pending state are
// both part of the WHERE clause, so a wrong owner or an already-confirmed
// visit simply affects zero rows.
func (r *visitRepository) Confirm(ctx context.Context, visitID, userID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.Visit{}).
		Where("id = ? AND user_id = ? AND status = ?", visitID, userID, entity.VisitStatusPending).
		Updates(map[string]any{
			"status":     entity.VisitStatusConfirmed,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *visitRepository) HasConfirmed(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Visit{}).
		Where("user_id = ? AND listing_id = ? AND status = ?", userID, listingID, entity.VisitStatusConfirmed).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
