package dto

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
)

type SubmitVerificationRequest struct {
	Document string `json:"document" validate:"required,min=11,max=20"`
}

type ReviewVerificationRequest struct {
	Approve bool `json:"approve"`
}

type VerificationResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Document   string     `json:"document"`
	Status     string     `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func VerificationResponseFromEntity(v *entity.UserVerification) VerificationResponse {
	return VerificationResponse{
		ID:         v.ID.String(),
		UserID:     v.UserID.String(),
		Document:   v.Document,
		Status:     string(v.Status),
		ReviewedAt: v.ReviewedAt,
		CreatedAt:  v.CreatedAt,
	}
}

func VerificationResponsesFromEntities(verifications []entity.UserVerification) []VerificationResponse {
	responses := make([]VerificationResponse, 0, len(verifications))
	for i := range verifications {
		responses = append(responses, VerificationResponseFromEntity(&verifications[i]))
	}
	return responses
}
