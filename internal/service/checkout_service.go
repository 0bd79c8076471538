package service

import (
	"context"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

const highlightItemTitle = "Destaque de anúncio"

type CreateCheckoutInput struct {
	Price      float64
	SuccessURL string
	CancelURL  string
	Reference  string
}

// CheckoutService brokers payment sessions for the listing-highlight
// product with the external processor.
type CheckoutService struct {
	gateway PaymentGateway
	logger  *logrus.Logger
}

func NewCheckoutService(gateway PaymentGateway, logger *logrus.Logger) *CheckoutService {
	return &CheckoutService{gateway: gateway, logger: logger}
}

func (s *CheckoutService) CreateSession(ctx context.Context, input CreateCheckoutInput) (PaymentSession, error) {
	if input.Price <= 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return PaymentSession{}, ErrInvalidPrice
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, CheckoutInput{
		Title:       highlightItemTitle,
		AmountCents: int64(math.Round(input.Price * 100)),
		Currency:    "BRL",
		SuccessURL:  strings.TrimSpace(input.SuccessURL),
		CancelURL:   strings.TrimSpace(input.CancelURL),
		Reference:   input.Reference,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("checkout session creation failed")
		}
		return PaymentSession{}, ErrPaymentProcessor
	}
	return session, nil
}
