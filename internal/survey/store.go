package survey

import (
	"context"

	"agriai/internal/storage"
)

// Store persists surveys.
type Store interface {
	Append(ctx context.Context, s *Survey) error
	ListAll(ctx context.Context) ([]*Survey, error)
}

// InMemoryStore is an append-only Store.
type InMemoryStore struct {
	log *storage.MemoryLog[*Survey]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{log: storage.NewMemoryLog[*Survey]()}
}

func (s *InMemoryStore) Append(_ context.Context, sv *Survey) error {
	s.log.Append(sv)
	return nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*Survey, error) {
	return s.log.All(), nil
}
