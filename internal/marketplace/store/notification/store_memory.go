package notification

import (
	"context"

	"agriai/internal/marketplace/models"
	"agriai/internal/storage"
)

// InMemoryNotificationStore is an append-only log of notifications.
type InMemoryNotificationStore struct {
	log *storage.MemoryLog[*models.Notification]
}

func New() *InMemoryNotificationStore {
	return &InMemoryNotificationStore{log: storage.NewMemoryLog[*models.Notification]()}
}

func (s *InMemoryNotificationStore) Append(_ context.Context, n *models.Notification) error {
	s.log.Append(n)
	return nil
}

func (s *InMemoryNotificationStore) ListAll(_ context.Context) ([]*models.Notification, error) {
	return s.log.All(), nil
}

// ListBySeller returns notifications addressed to sellerID in creation order.
func (s *InMemoryNotificationStore) ListBySeller(_ context.Context, sellerID string) ([]*models.Notification, error) {
	return s.log.Filter(func(n *models.Notification) bool {
		return n.SellerID == sellerID
	}), nil
}
