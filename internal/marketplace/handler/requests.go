package handler

import (
	"fmt"

	"agriai/internal/marketplace/models"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/validation"
)

// RegisterSellerRequest is the body of POST /api/sellers.
type RegisterSellerRequest struct {
	Name     string             `json:"name" validate:"max=128"`
	Location *domain.Location   `json:"location"`
	Crops    []domain.CropOffer `json:"crops" validate:"dive"`
}

// Validate implements httputil.Validatable.
func (r *RegisterSellerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Crops) > validation.MaxOffersPerSeller {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("crops exceeds maximum of %d", validation.MaxOffersPerSeller))
	}
	return nil
}

func (r *RegisterSellerRequest) Model() models.RegisterSeller {
	return models.RegisterSeller{
		Name:     r.Name,
		Location: r.Location,
		Crops:    r.Crops,
	}
}

// BuyerInterestRequest is the body of POST /api/buyer-interest.
type BuyerInterestRequest struct {
	SellerID  string          `json:"seller_id" validate:"max=64"`
	BuyerID   string          `json:"buyer_id" validate:"max=64"`
	BuyerName string          `json:"buyer_name" validate:"max=128"`
	Crop      string          `json:"crop" validate:"max=128"`
	Quantity  domain.Quantity `json:"quantity" validate:"gte=0"`
	Message   string          `json:"message" validate:"max=2000"`
}

// Validate implements httputil.Validatable.
func (r *BuyerInterestRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

func (r *BuyerInterestRequest) Model() models.BuyerInterest {
	return models.BuyerInterest{
		SellerID:  r.SellerID,
		BuyerID:   r.BuyerID,
		BuyerName: r.BuyerName,
		Crop:      r.Crop,
		Quantity:  float64(r.Quantity),
		Message:   r.Message,
	}
}
