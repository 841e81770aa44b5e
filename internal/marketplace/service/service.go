// Package service implements seller registration and buyer-interest
// notifications on top of the marketplace stores.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"agriai/internal/marketplace/metrics"
	"agriai/internal/marketplace/models"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/sentinel"
	"agriai/pkg/requestcontext"
)

// SellerStore persists seller profiles.
type SellerStore interface {
	Save(ctx context.Context, profile *models.SellerProfile) error
	FindByID(ctx context.Context, id domain.SellerID) (*models.SellerProfile, error)
	ListAll(ctx context.Context) ([]*models.SellerProfile, error)
}

// NotificationStore persists notifications.
type NotificationStore interface {
	Append(ctx context.Context, n *models.Notification) error
	ListAll(ctx context.Context) ([]*models.Notification, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*models.Notification, error)
}

// Service owns the marketplace records.
type Service struct {
	sellers       SellerStore
	notifications NotificationStore
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// Option configures the marketplace service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(sellers SellerStore, notifications NotificationStore, opts ...Option) *Service {
	s := &Service{
		sellers:       sellers,
		notifications: notifications,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterSeller creates a seller profile with a fresh id. Missing fields
// take their defaults: name "Seller", location (0,0), no crops.
func (s *Service) RegisterSeller(ctx context.Context, in models.RegisterSeller) (*models.SellerProfile, error) {
	profile := &models.SellerProfile{
		ID:        domain.NewSellerID(),
		Name:      strings.TrimSpace(in.Name),
		Crops:     in.Crops,
		CreatedAt: requestcontext.Now(ctx),
	}
	if profile.Name == "" {
		profile.Name = models.DefaultSellerName
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if profile.Crops == nil {
		profile.Crops = []domain.CropOffer{}
	}

	if err := s.sellers.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save seller")
	}
	s.metrics.IncrementSellersRegistered(len(profile.Crops))
	s.logger.InfoContext(ctx, "seller registered",
		"seller_id", profile.ID,
		"offers", len(profile.Crops),
	)
	return profile, nil
}

func (s *Service) ListSellers(ctx context.Context) ([]*models.SellerProfile, error) {
	sellers, err := s.sellers.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list sellers")
	}
	return sellers, nil
}

// RecordInterest appends an unread notification for the seller.
func (s *Service) RecordInterest(ctx context.Context, in models.BuyerInterest) (*models.Notification, error) {
	n := &models.Notification{
		ID:        domain.NewNotificationID(),
		SellerID:  strings.TrimSpace(in.SellerID),
		BuyerID:   strings.TrimSpace(in.BuyerID),
		BuyerName: strings.TrimSpace(in.BuyerName),
		Crop:      strings.TrimSpace(in.Crop),
		Quantity:  in.Quantity,
		Message:   in.Message,
		Read:      false,
		CreatedAt: requestcontext.Now(ctx),
	}
	if n.BuyerName == "" {
		n.BuyerName = models.DefaultBuyerName
	}
	if !s.sellerKnown(ctx, n.SellerID) {
		s.logger.WarnContext(ctx, "buyer interest for unregistered seller",
			"seller_id", n.SellerID,
		)
	}

	if err := s.notifications.Append(ctx, n); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save notification")
	}
	s.metrics.IncrementNotificationsCreated()
	s.logger.InfoContext(ctx, "buyer interest recorded",
		"notification_id", n.ID,
		"seller_id", n.SellerID,
		"crop", n.Crop,
	)
	return n, nil
}

// sellerKnown reports whether id names a registered seller. Interest in
// unknown sellers is still recorded.
func (s *Service) sellerKnown(ctx context.Context, id string) bool {
	sellerID, err := domain.ParseSellerID(id)
	if err != nil {
		return false
	}
	if _, err := s.sellers.FindByID(ctx, sellerID); err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to look up seller", "seller_id", id, "error", err)
		}
		return false
	}
	return true
}

// ListNotifications returns every notification, or only those for sellerID
// when it is non-empty.
func (s *Service) ListNotifications(ctx context.Context, sellerID string) ([]*models.Notification, error) {
	sellerID = strings.TrimSpace(sellerID)
	var (
		items []*models.Notification
		err   error
	)
	if sellerID == "" {
		items, err = s.notifications.ListAll(ctx)
	} else {
		items, err = s.notifications.ListBySeller(ctx, sellerID)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list notifications")
	}
	return items, nil
}
