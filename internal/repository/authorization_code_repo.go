package repository

import (
	"context"
	"errors"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorizationCodeRepository interface {
	Create(ctx context.Context, code *entity.AuthorizationCode) error
	FindByCode(ctx context.Context, code string) (*entity.AuthorizationCode, error)
	Redeem(ctx context.Context, code string, listingID uuid.UUID) (bool, error)
}

type authorizationCodeRepository struct {
	db *gorm.DB
}

func NewAuthorizationCodeRepository(db *gorm.DB) AuthorizationCodeRepository {
	return &authorizationCodeRepository{db: db}
}

func (r *authorizationCodeRepository) Create(ctx context.Context, code *entity.AuthorizationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *authorizationCodeRepository) FindByCode(ctx context.Context, code string) (*entity.AuthorizationCode, error) {
	var record entity.AuthorizationCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

// Redeem flips used to true at most once. The unused check lives in the
// WHERE clause of a single UPDATE, so two concurrent redemptions of the
// same code cannot both see an affected row.
func (r *authorizationCodeRepository) Redeem(ctx context.Context, code string, listingID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.AuthorizationCode{}).
		Where("code = ? AND listing_id = ? AND used = false", code, listingID).
		Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
