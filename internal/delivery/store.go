package delivery

import (
	"context"

	"agriai/internal/storage"
	"agriai/pkg/domain"
)

// Store persists delivery records keyed by tracking id.
type Store interface {
	// Put stores rec, replacing any record with the same tracking id.
	Put(ctx context.Context, rec *Record) (replaced bool, err error)
	FindByID(ctx context.Context, id domain.TrackingID) (*Record, error)
	ListAll(ctx context.Context) ([]*Record, error)
}

// InMemoryStore is a Store whose listing order is first-creation order;
// replacing a record keeps its position.
type InMemoryStore struct {
	records *storage.MemoryKeyed[domain.TrackingID, *Record]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: storage.NewMemoryKeyed[domain.TrackingID, *Record]()}
}

// NewSeededStore returns a store holding the demo record.
func NewSeededStore() *InMemoryStore {
	s := NewInMemoryStore()
	s.records.Put(DemoTrackingID, demoRecord())
	return s
}

func (s *InMemoryStore) Put(_ context.Context, rec *Record) (bool, error) {
	return s.records.Put(rec.TrackingID, rec), nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.TrackingID) (*Record, error) {
	return s.records.Get(id)
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*Record, error) {
	return s.records.All(), nil
}
