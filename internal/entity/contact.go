package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactKind string

const (
	ContactKindMessage ContactKind = "message"
	ContactKindVisit   ContactKind = "visit"
)

// Contact is a write-once lead from the public contact / visit-request
// forms. It has no lifecycle beyond creation.
type Contact struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID *uuid.UUID `gorm:"type:uuid;index"`

	Kind ContactKind `gorm:"type:varchar(20);default:'message';not null"`

	Name    string `gorm:"type:varchar(120);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(40)"`
	City    string `gorm:"type:varchar(120)"`
	Country string `gorm:"type:varchar(60)"`
	Message string `gorm:"type:text;not null"`

	PreferredAt *time.Time

	CreatedAt time.Time
}

func (Contact) TableName() string {
	return "contatos"
}
