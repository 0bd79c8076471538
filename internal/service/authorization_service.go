package service

import (
	"context"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/google/uuid"
)

// AuthorizationService gates access to contact details and proposal
// submission for a listing: either through a single-use code handed out
// after a visit, or through a confirmed visit on record.
type AuthorizationService struct {
	codes  repository.AuthorizationCodeRepository
	visits repository.VisitRepository
}

func NewAuthorizationService(codes repository.AuthorizationCodeRepository, visits repository.VisitRepository) *AuthorizationService {
	return &AuthorizationService{codes: codes, visits: visits}
}

// RedeemCode validates and consumes a code for a listing. It fails closed:
// unknown code, wrong listing or already-used code all come back false with
// no mutation. The consumption itself is a conditional update, so of two
// concurrent redemptions exactly one returns true.
func (s *AuthorizationService) RedeemCode(ctx context.Context, code string, listingID uuid.UUID) (bool, error) {
	code = utils.NormalizeCode(code)
	if code == "" {
		return false, nil
	}
	return s.codes.Redeem(ctx, code, listingID)
}

// Authorized reports whether the user may act on the listing. Anonymous
// callers are always denied; authenticated users qualify through a
// confirmed visit for that listing.
func (s *AuthorizationService) Authorized(ctx context.Context, listingID uuid.UUID, userID *uuid.UUID) (bool, error) {
	if userID == nil {
		return false, nil
	}
	return s.visits.HasConfirmed(ctx, *userID, listingID)
}

// IssueCode mints a new single-use code for a listing. Admin-only; the
// reference system created these out-of-band.
func (s *AuthorizationService) IssueCode(ctx context.Context, listingID uuid.UUID) (*entity.AuthorizationCode, error) {
	raw, err := utils.GenerateAuthorizationCode(10)
	if err != nil {
		return nil, err
	}
	code := &entity.AuthorizationCode{
		Code:      raw,
		ListingID: listingID,
	}
	if err := s.codes.Create(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}
