package dto

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
)

type ContactRequest struct {
	ListingID   string     `json:"listing_id" validate:"omitempty,uuid4"`
	Kind        string     `json:"kind" validate:"omitempty,oneof=message visit"`
	Name        string     `json:"name" validate:"required,max=120"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"omitempty,max=40"`
	City        string     `json:"city" validate:"omitempty,max=120"`
	Country     string     `json:"country" validate:"omitempty,max=60"`
	Message     string     `json:"message" validate:"required"`
	PreferredAt *time.Time `json:"preferred_at" validate:"omitempty"`
}

type ContactResponse struct {
	ID          string     `json:"id"`
	ListingID   *string    `json:"listing_id,omitempty"`
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	Message     string     `json:"message"`
	PreferredAt *time.Time `json:"preferred_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ContactResponseFromEntity(contact *entity.Contact) ContactResponse {
	response := ContactResponse{
		ID:          contact.ID.String(),
		Kind:        string(contact.Kind),
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		City:        contact.City,
		Country:     contact.Country,
		Message:     contact.Message,
		PreferredAt: contact.PreferredAt,
		CreatedAt:   contact.CreatedAt,
	}
	if contact.ListingID != nil {
		id := contact.ListingID.String()
		response.ListingID = &id
	}
	return response
}

type ProposalRequest struct {
	ListingID     string  `json:"listing_id" validate:"omitempty,uuid4"`
	Name          string  `json:"name" validate:"required,max=120"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"omitempty,max=40"`
	City          string  `json:"city" validate:"omitempty,max=120"`
	Country       string  `json:"country" validate:"omitempty,max=60"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Conditions    string  `json:"conditions" validate:"omitempty"`
	Justification string  `json:"justification" validate:"omitempty"`
}

type ProposalResponse struct {
	ID            string    `json:"id"`
	ListingID     *string   `json:"listing_id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	Amount        float64   `json:"amount"`
	Conditions    string    `json:"conditions,omitempty"`
	Justification string    `json:"justification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ProposalResponseFromEntity(proposal *entity.Proposal) ProposalResponse {
	response := ProposalResponse{
		ID:            proposal.ID.String(),
		Name:          proposal.Name,
		Email:         proposal.Email,
		Phone:         proposal.Phone,
		City:          proposal.City,
		Country:       proposal.Country,
		Amount:        proposal.Amount,
		Conditions:    proposal.Conditions,
		Justification: proposal.Justification,
		CreatedAt:     proposal.CreatedAt,
	}
	if proposal.ListingID != nil {
		id := proposal.ListingID.String()
		response.ListingID = &id
	}
	return response
}
