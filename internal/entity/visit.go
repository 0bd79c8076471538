package entity

import (
	"time"

	"github.com/google/uuid"
)

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusConfirmed VisitStatus = "confirmed"
)

// Visit is a scheduled inspection of a listing. The only transition is
// pending -> confirmed, performed by the owning user.
type Visit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Listing   Listing

	Status VisitStatus `gorm:"type:varchar(20);default:'pending';not null"`

	ScheduledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
