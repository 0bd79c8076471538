package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizationCode is a single-use token gating contact/proposal actions
// for one listing. It transitions unused -> used exactly once; redemption
// is a conditional update so concurrent attempts cannot both succeed.
type AuthorizationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Listing   Listing

	Used   bool `gorm:"default:false;not null"`
	UsedAt *time.Time

	CreatedAt time.Time
}
