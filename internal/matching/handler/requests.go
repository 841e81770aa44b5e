package handler

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"agriai/internal/matching"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/validation"
)

// ClientID is an id chosen by the caller. Front ends send either strings or
// numbers, so both decode into the same string form.
type ClientID string

func (id *ClientID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ClientID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return dErrors.New(dErrors.CodeInvalidInput, "id must be a string or a number")
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return dErrors.New(dErrors.CodeInvalidInput, "id must be a string or a number")
		}
		*id = ClientID(n.String())
	}
	return nil
}

// BuyerRequest is one buyer in a match request.
type BuyerRequest struct {
	ID         ClientID        `json:"id" validate:"max=64"`
	CropWanted string          `json:"crop_wanted" validate:"max=128"`
	Location   domain.Location `json:"location"`
	MaxBudget  float64         `json:"max_budget"`
	MinQuality float64         `json:"min_quality" validate:"gte=0,lte=10"`
}

// SellerRequest is one seller in a match request.
type SellerRequest struct {
	ID       ClientID           `json:"id" validate:"max=64"`
	Name     string             `json:"name" validate:"max=128"`
	Location domain.Location    `json:"location"`
	Crops    []domain.CropOffer `json:"crops" validate:"dive"`
}

// MatchRequest is the body of POST /api/match. A missing max_distance_km
// uses the configured default radius.
type MatchRequest struct {
	Buyers        []BuyerRequest  `json:"buyers" validate:"dive"`
	Sellers       []SellerRequest `json:"sellers" validate:"dive"`
	MaxDistanceKm *float64        `json:"max_distance_km" validate:"omitempty,gte=0"`
}

// Validate implements httputil.Validatable.
func (r *MatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Buyers) > validation.MaxBuyers {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("buyers exceeds maximum of %d", validation.MaxBuyers))
	}
	if len(r.Sellers) > validation.MaxSellers {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("sellers exceeds maximum of %d", validation.MaxSellers))
	}
	for i, s := range r.Sellers {
		if len(s.Crops) > validation.MaxOffersPerSeller {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("sellers[%d].crops exceeds maximum of %d", i, validation.MaxOffersPerSeller))
		}
	}
	return nil
}

func (r *MatchRequest) Model() matching.Request {
	buyers := make([]matching.Buyer, 0, len(r.Buyers))
	for _, b := range r.Buyers {
		buyers = append(buyers, matching.Buyer{
			ID:         string(b.ID),
			CropWanted: b.CropWanted,
			Location:   b.Location,
			MaxBudget:  b.MaxBudget,
			MinQuality: b.MinQuality,
		})
	}
	sellers := make([]matching.Seller, 0, len(r.Sellers))
	for _, s := range r.Sellers {
		sellers = append(sellers, matching.Seller{
			ID:       string(s.ID),
			Name:     s.Name,
			Location: s.Location,
			Crops:    s.Crops,
		})
	}
	return matching.Request{
		Buyers:        buyers,
		Sellers:       sellers,
		MaxDistanceKm: r.MaxDistanceKm,
	}
}
