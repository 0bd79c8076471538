package entity

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a buyer's formal offer against a listing. Write-once.
type Proposal struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID *uuid.UUID `gorm:"type:uuid;index"`

	Name    string `gorm:"type:varchar(120);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(40)"`
	City    string `gorm:"type:varchar(120)"`
	Country string `gorm:"type:varchar(60)"`

	Amount        float64 `gorm:"not null"`
	Conditions    string  `gorm:"type:text"`
	Justification string  `gorm:"type:text"`

	CreatedAt time.Time
}

func (Proposal) TableName() string {
	return "propostas"
}
