package service

import (
	"context"
	"strings"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"

	"github.com/google/uuid"
)

// VerificationService backs the admin-facing CPF/document review queue.
type VerificationService struct {
	verifications repository.VerificationRepository
}

func NewVerificationService(verifications repository.VerificationRepository) *VerificationService {
	return &VerificationService{verifications: verifications}
}

func (s *VerificationService) Submit(ctx context.Context, userID uuid.UUID, document string) (*entity.UserVerification, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, ErrInvalidInput
	}
	verification := &entity.UserVerification{
		UserID:   userID,
		Document: document,
		Status:   entity.VerificationStatusPending,
	}
	if err := s.verifications.Create(ctx, verification); err != nil {
		return nil, err
	}
	return verification, nil
}

func (s *VerificationService) Search(ctx context.Context, filter repository.VerificationFilter) ([]entity.UserVerification, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.verifications.Search(ctx, filter)
}

func (s *VerificationService) Review(ctx context.Context, id uuid.UUID, approve bool, reviewerID uuid.UUID) error {
	status := entity.VerificationStatusRejected
	if approve {
		status = entity.VerificationStatusApproved
	}
	reviewed, err := s.verifications.Review(ctx, id, status, reviewerID)
	if err != nil {
		return err
	}
	if !reviewed {
		return ErrVerificationNotFound
	}
	return nil
}
