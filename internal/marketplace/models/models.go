package models

import (
	"time"

	"agriai/pkg/domain"
)

const (
	DefaultSellerName = "Seller"
	DefaultBuyerName  = "Buyer"
)

// SellerProfile is a registered seller and what they currently offer.
type SellerProfile struct {
	ID        domain.SellerID
	Name      string
	Location  domain.Location
	Crops     []domain.CropOffer
	CreatedAt time.Time
}

// Notification tells a seller that a buyer is interested in a crop.
// Read is always false when created; nothing in this service flips it.
type Notification struct {
	ID        domain.NotificationID
	SellerID  string
	BuyerID   string
	BuyerName string
	Crop      string
	Quantity  float64
	Message   string
	Read      bool
	CreatedAt time.Time
}

// RegisterSeller is the input for creating a seller profile. A nil Location
// means the client did not send one.
type RegisterSeller struct {
	Name     string
	Location *domain.Location
	Crops    []domain.CropOffer
}

// BuyerInterest is the input for notifying a seller.
type BuyerInterest struct {
	SellerID  string
	BuyerID   string
	BuyerName string
	Crop      string
	Quantity  float64
	Message   string
}
