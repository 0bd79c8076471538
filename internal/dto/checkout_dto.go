package dto

type CheckoutRequest struct {
	Price      float64 `json:"price" validate:"required,gt=0"`
	SuccessURL string  `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string  `json:"cancelUrl" validate:"omitempty,url"`
}

type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}
