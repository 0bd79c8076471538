package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

// Listing is an "anuncio": a sellable item or property published under one
// of the vertical brands. Listings are moderated (pending until approved)
// and never hard-deleted.
type Listing struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	Brand       string  `gorm:"type:varchar(40);not null;index"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Currency    string  `gorm:"type:varchar(3);default:'BRL';not null"`
	City        string  `gorm:"type:varchar(120);index"`
	Country     string  `gorm:"type:varchar(60)"`

	// Images holds a JSON array of public media URLs.
	Images datatypes.JSON `gorm:"type:jsonb"`

	Status ListingStatus `gorm:"type:varchar(20);default:'pending';not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Listing) TableName() string {
	return "anuncios"
}
