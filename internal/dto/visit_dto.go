package dto

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
)

type ScheduleVisitRequest struct {
	ListingID   string     `json:"listing_id" validate:"required,uuid4"`
	ScheduledAt *time.Time `json:"scheduled_at" validate:"omitempty"`
}

type VisitResponse struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listing_id"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ConfirmVisitResponse struct {
	Success bool          `json:"success"`
	Visit   VisitResponse `json:"visit"`
}

func VisitResponseFromEntity(visit *entity.Visit) VisitResponse {
	return VisitResponse{
		ID:          visit.ID.String(),
		ListingID:   visit.ListingID.String(),
		Status:      string(visit.Status),
		ScheduledAt: visit.ScheduledAt,
		CreatedAt:   visit.CreatedAt,
		UpdatedAt:   visit.UpdatedAt,
	}
}

func VisitResponsesFromEntities(visits []entity.Visit) []VisitResponse {
	responses := make([]VisitResponse, 0, len(visits))
	for i := range visits {
		responses = append(responses, VisitResponseFromEntity(&visits[i]))
	}
	return responses
}
