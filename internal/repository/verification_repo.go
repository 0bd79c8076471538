package repository

import (
	"context"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationFilter narrows admin searches over identity checks.
type VerificationFilter struct {
	Document string
	Status   entity.VerificationStatus
	Limit    int
	Offset   int
}

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.UserVerification) error
	Search(ctx context.Context, filter VerificationFilter) ([]entity.UserVerification, error)
	Review(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, reviewerID uuid.UUID) (bool, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, v *entity.UserVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *verificationRepository) Search(ctx context.Context, filter VerificationFilter) ([]entity.UserVerification, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Document != "" {
		query = query.Where("document LIKE ?", "%"+filter.Document+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var verifications []entity.UserVerification
	if err := query.Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}

func (r *verificationRepository) Review(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, reviewerID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.UserVerification{}).
		Where("id = ? AND status = ?", id, entity.VerificationStatusPending).
		Updates(map[string]any{
			"status":      status,
			"reviewed_at": &now,
			"reviewed_by": &reviewerID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
