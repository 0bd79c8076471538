package service

import (
	"context"
	"errors"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingAccessToken = errors.New("missing payment processor access token")

// DisabledPaymentGateway stands in when no processor credentials are
// configured; every session attempt fails upstream-style.
type DisabledPaymentGateway struct{}

func (DisabledPaymentGateway) CreateCheckoutSession(ctx context.Context, input CheckoutInput) (PaymentSession, error) {
	return PaymentSession{}, errors.New("payment gateway not configured")
}

// MercadoPagoGateway creates redirect-capable checkout sessions through the
// Mercado Pago preference API.
type MercadoPagoGateway struct {
	client preference.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, input CheckoutInput) (PaymentSession, error) {
	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      input.Title,
				Quantity:   1,
				UnitPrice:  float64(input.AmountCents) / 100,
				CurrencyID: input.Currency,
			},
		},
		ExternalReference: input.Reference,
	}
	if input.SuccessURL != "" || input.CancelURL != "" {
		request.BackURLs = &preference.BackURLsRequest{
			Success: input.SuccessURL,
			Failure: input.CancelURL,
			Pending: input.SuccessURL,
		}
	}

	resp, err := g.client.Create(ctx, request)
	if err != nil {
		return PaymentSession{}, err
	}
	return PaymentSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}
