package matching

import (
	"agriai/pkg/domain"
)

// DefaultMaxDistanceKm applies when a request does not set a radius.
const DefaultMaxDistanceKm = 200.0

// UnboundedBudget stands in for a missing or non-positive max budget.
const UnboundedBudget = 1e9

const defaultSellerName = "Seller"

// Buyer describes what one buyer wants.
type Buyer struct {
	ID         string
	CropWanted string
	Location   domain.Location
	MaxBudget  float64
	MinQuality float64
}

// Seller is a seller with the offers considered for matching.
type Seller struct {
	ID       string
	Name     string
	Location domain.Location
	Crops    []domain.CropOffer
}

// Result is one surviving buyer, seller and offer combination.
type Result struct {
	BuyerID      string  `json:"buyer_id"`
	SellerID     string  `json:"seller_id"`
	SellerName   string  `json:"seller_name"`
	Crop         string  `json:"crop"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	QualityScore float64 `json:"quality_score"`
	DistanceKm   float64 `json:"distance_km"`
	MatchScore   float64 `json:"match_score"`
}
