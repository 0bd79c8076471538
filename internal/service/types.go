package service

import (
	"context"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	AccessTokenTTL time.Duration
	SessionTTL     time.Duration
}

// LeadNotification is what the platform inbox receives when a public form
// is submitted.
type LeadNotification struct {
	Kind      string
	Name      string
	Email     string
	Message   string
	ListingID *uuid.UUID
}

type EmailSender interface {
	SendLeadNotification(ctx context.Context, notification LeadNotification) error
}

// CheckoutInput describes the single fixed line item a checkout session is
// created for. AmountCents is in the smallest currency unit.
type CheckoutInput struct {
	Title       string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Reference   string
}

type PaymentSession struct {
	ID          string
	RedirectURL string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutInput) (PaymentSession, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type AccessTokenIssuer interface {
	IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
