package dto

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
)

type ValidateCodeRequest struct {
	Code   string `json:"code" validate:"required"`
	PropID string `json:"propId" validate:"required,uuid4"`
}

type ValidateCodeResponse struct {
	Valid bool `json:"valid"`
}

type CheckAuthorizationResponse struct {
	Authorized bool `json:"authorized"`
}

type IssueCodeRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
}

type AuthorizationCodeResponse struct {
	Code      string    `json:"code"`
	ListingID string    `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

func AuthorizationCodeResponseFromEntity(code *entity.AuthorizationCode) AuthorizationCodeResponse {
	return AuthorizationCodeResponse{
		Code:      code.Code,
		ListingID: code.ListingID.String(),
		CreatedAt: code.CreatedAt,
	}
}
