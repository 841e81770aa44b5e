package seller

import (
	"context"

	"agriai/internal/marketplace/models"
	"agriai/internal/storage"
	"agriai/pkg/domain"
)

// InMemorySellerStore keeps seller profiles in registration order.
type InMemorySellerStore struct {
	sellers *storage.MemoryKeyed[domain.SellerID, *models.SellerProfile]
}

func New() *InMemorySellerStore {
	return &InMemorySellerStore{
		sellers: storage.NewMemoryKeyed[domain.SellerID, *models.SellerProfile](),
	}
}

func (s *InMemorySellerStore) Save(_ context.Context, profile *models.SellerProfile) error {
	s.sellers.Put(profile.ID, profile)
	return nil
}

// FindByID returns sentinel.ErrNotFound for unknown ids.
func (s *InMemorySellerStore) FindByID(_ context.Context, id domain.SellerID) (*models.SellerProfile, error) {
	return s.sellers.Get(id)
}

func (s *InMemorySellerStore) ListAll(_ context.Context) ([]*models.SellerProfile, error) {
	return s.sellers.All(), nil
}
