package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"agriai/internal/delivery"
	"agriai/internal/delivery/handler/mocks"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/delivery-mocks.go -package=mocks Service
type DeliveryHandlerSuite struct {
	suite.Suite
	router      http.Handler
	mockService *mocks.MockService
}

func TestDeliveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveryHandlerSuite))
}

func (s *DeliveryHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.mockService = mocks.NewMockService(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(s.mockService, logger).Register(r)
	s.router = r
}

func sampleRecords() []*delivery.Record {
	return []*delivery.Record{
		{TrackingID: "DEMO001", Status: "in_transit", Stages: delivery.DefaultStages()},
		{TrackingID: "T-2", Status: "created", Stages: delivery.DefaultStages()},
	}
}

func (s *DeliveryHandlerSuite) TestGetByTrackingID() {
	rec := sampleRecords()[0]
	s.mockService.EXPECT().Get(gomock.Any(), domain.TrackingID("DEMO001")).Return(rec, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/delivery?tracking_id=DEMO001", nil))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Empty(rr.Header().Get(FallbackHeader))
	resp := testutil.UnmarshalResponse[RecordResponse](s.T(), rr)
	s.Equal("DEMO001", resp.TrackingID)
	s.Equal("in_transit", resp.Status)
	s.Len(resp.Stages, 4)
}

func (s *DeliveryHandlerSuite) TestGetUnknownFallsBackToList() {
	s.mockService.EXPECT().Get(gomock.Any(), domain.TrackingID("NOPE")).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "delivery not found"))
	s.mockService.EXPECT().List(gomock.Any()).Return(sampleRecords(), nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/delivery?tracking_id=NOPE", nil))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Equal("all", rr.Header().Get(FallbackHeader))
	list := testutil.UnmarshalResponse[[]RecordResponse](s.T(), rr)
	s.Len(*list, 2)
}

func (s *DeliveryHandlerSuite) TestGetMalformedIDFallsBackWithoutLookup() {
	s.mockService.EXPECT().List(gomock.Any()).Return(sampleRecords(), nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/delivery?tracking_id=bad%01id", nil))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Equal("all", rr.Header().Get(FallbackHeader))
}

func (s *DeliveryHandlerSuite) TestGetAll() {
	s.mockService.EXPECT().List(gomock.Any()).Return(sampleRecords(), nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/delivery", nil))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Empty(rr.Header().Get(FallbackHeader))
	list := testutil.UnmarshalResponse[[]RecordResponse](s.T(), rr)
	s.Equal("DEMO001", (*list)[0].TrackingID)
}

func (s *DeliveryHandlerSuite) TestListFailure() {
	s.mockService.EXPECT().List(gomock.Any()).
		Return(nil, dErrors.Wrap(errors.New("disk on fire"), dErrors.CodeInternal, "failed to list deliveries"))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/delivery", nil))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	s.NotContains(rr.Body.String(), "disk on fire")
}

func (s *DeliveryHandlerSuite) TestUpsert() {
	s.Run("passes parsed request to service", func() {
		s.mockService.EXPECT().Upsert(gomock.Any(), delivery.Upsert{
			TrackingID:  "T-9",
			Status:      "dispatched",
			Stages:      []delivery.Stage{{Name: "Packed", Done: true}},
			Origin:      "Farm B",
			Destination: "Mandi",
		}).DoAndReturn(func(_ context.Context, in delivery.Upsert) (*delivery.Record, error) {
			return &delivery.Record{
				TrackingID:  in.TrackingID,
				Status:      in.Status,
				Stages:      in.Stages,
				Origin:      in.Origin,
				Destination: in.Destination,
			}, nil
		})

		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/delivery", map[string]any{
			"tracking_id": " T-9 ",
			"status":      "dispatched",
			"stages":      []map[string]any{{"name": "Packed", "done": true}},
			"origin":      "Farm B",
			"destination": "Mandi",
		}))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RecordResponse](s.T(), rr)
		s.Equal("T-9", resp.TrackingID)
		s.Equal([]delivery.Stage{{Name: "Packed", Done: true}}, resp.Stages)
	})

	s.Run("absent stages stay nil so the service applies defaults", func() {
		s.mockService.EXPECT().Upsert(gomock.Any(), delivery.Upsert{}).
			Return(&delivery.Record{TrackingID: "generated", Status: "created", Stages: delivery.DefaultStages()}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/delivery", `{}`))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("rejects overlong tracking id", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/delivery", map[string]any{
			"tracking_id": strings.Repeat("x", 65),
		}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("rejects too many stages", func() {
		stages := make([]map[string]any, 21)
		for i := range stages {
			stages[i] = map[string]any{"name": "stage"}
		}
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/delivery", map[string]any{"stages": stages}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

// Full stack against the seeded store.
func TestDeliveryEndToEnd(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := delivery.NewService(delivery.NewSeededStore(), logger)
	r := chi.NewRouter()
	New(svc, logger).Register(r)

	post := func(body map[string]any) RecordResponse {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/delivery", body))
		testutil.AssertStatus(t, rr, http.StatusOK)
		return *testutil.UnmarshalResponse[RecordResponse](t, rr)
	}

	first := post(map[string]any{
		"tracking_id": "ORD-1",
		"stages": []map[string]any{
			{"name": "A", "done": true},
			{"name": "B", "done": false},
			{"name": "C", "done": false},
		},
	})
	assert.Len(t, first.Stages, 3)
	assert.Equal(t, "created", first.Status)

	second := post(map[string]any{
		"tracking_id": "ORD-1",
		"status":      "delivered",
		"stages":      []map[string]any{{"name": "Done", "done": true}},
	})
	assert.Equal(t, []delivery.Stage{{Name: "Done", Done: true}}, second.Stages)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/api/delivery?tracking_id=ORD-1", nil))
	got := testutil.UnmarshalResponse[RecordResponse](t, rr)
	assert.Equal(t, "delivered", got.Status)
	assert.Equal(t, []delivery.Stage{{Name: "Done", Done: true}}, got.Stages)
	assert.Empty(t, got.Origin, "replace does not merge")

	generated := post(map[string]any{})
	require.NotEmpty(t, generated.TrackingID)
	assert.Equal(t, delivery.DefaultStages(), generated.Stages)

	rr = testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/api/delivery", nil))
	all := testutil.UnmarshalResponse[[]RecordResponse](t, rr)
	require.Len(t, *all, 3)
	assert.Equal(t, "DEMO001", (*all)[0].TrackingID)
	assert.Equal(t, "ORD-1", (*all)[1].TrackingID)
}
