package survey

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, &Survey{Role: "farmer"})
		}()
	}
	wg.Wait()

	all, err = store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 25)
}
