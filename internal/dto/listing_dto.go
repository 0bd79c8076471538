package dto

import (
	"encoding/json"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
)

type CreateListingRequest struct {
	Brand       string   `json:"brand" validate:"required"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	City        string   `json:"city" validate:"omitempty,max=120"`
	Country     string   `json:"country" validate:"omitempty,max=60"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

type ListingResponse struct {
	ID          string    `json:"id"`
	Brand       string    `json:"brand"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func ListingResponseFromEntity(listing *entity.Listing) ListingResponse {
	var images []string
	if len(listing.Images) > 0 {
		_ = json.Unmarshal(listing.Images, &images)
	}
	if images == nil {
		images = []string{}
	}
	return ListingResponse{
		ID:          listing.ID.String(),
		Brand:       listing.Brand,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Currency:    listing.Currency,
		City:        listing.City,
		Country:     listing.Country,
		Images:      images,
		Status:      string(listing.Status),
		CreatedAt:   listing.CreatedAt,
	}
}

func ListingResponsesFromEntities(listings []entity.Listing) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ListingResponseFromEntity(&listings[i]))
	}
	return responses
}
