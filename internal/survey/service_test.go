package survey

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/pkg/requestcontext"
)

func TestService_Submit(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	reg := prometheus.NewRegistry()
	store := NewInMemoryStore()
	svc := NewService(store, WithRegisterer(reg))

	first, err := svc.Submit(ctx, Submission{
		Role:      " Farmer ",
		Responses: map[string]any{"irrigation": "drip", "acres": 4.0},
		Timestamp: "2026-05-10T11:59:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Farmer", first.Role)
	assert.Equal(t, now, first.ReceivedAt)
	assert.Equal(t, "2026-05-10T11:59:00Z", first.Timestamp)

	second, err := svc.Submit(ctx, Submission{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotNil(t, second.Responses)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.submitted.WithLabelValues("farmer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.submitted.WithLabelValues("unspecified")))
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "buyer", roleLabel("Buyer"))
	assert.Equal(t, "other", roleLabel("trader"))
	assert.Equal(t, "unspecified", roleLabel(""))
}
