package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// UserVerification is a CPF/document identity check reviewed by an admin.
type UserVerification struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Document string             `gorm:"type:varchar(20);not null;index"`
	Status   VerificationStatus `gorm:"type:varchar(20);default:'pending';not null;index"`

	ReviewedAt *time.Time
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
