package handler

import (
	"time"

	"agriai/internal/marketplace/models"
	"agriai/pkg/domain"
)

// SellerResponse is one seller profile.
type SellerResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Location  domain.Location    `json:"location"`
	Crops     []domain.CropOffer `json:"crops"`
	CreatedAt time.Time          `json:"created_at"`
}

// NotificationResponse is one buyer-interest notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	BuyerID   string    `json:"buyer_id"`
	BuyerName string    `json:"buyer_name"`
	Crop      string    `json:"crop"`
	Quantity  float64   `json:"quantity"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSeller(p *models.SellerProfile) SellerResponse {
	return SellerResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Location:  p.Location,
		Crops:     p.Crops,
		CreatedAt: p.CreatedAt,
	}
}

func FromSellers(profiles []*models.SellerProfile) []SellerResponse {
	out := make([]SellerResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromSeller(p))
	}
	return out
}

func FromNotification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		SellerID:  n.SellerID,
		BuyerID:   n.BuyerID,
		BuyerName: n.BuyerName,
		Crop:      n.Crop,
		Quantity:  n.Quantity,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(items []*models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}
