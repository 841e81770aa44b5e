package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "agriai/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "store failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "No image file"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "No image file" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})

	t.Run("uncoded error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, io.ErrUnexpectedEOF)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

type greetRequest struct {
	Name string  `json:"name" validate:"max=10"`
	Lat  float64 `json:"lat" validate:"latitude"`
}

func (r *greetRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "forbidden" {
		return dErrors.New(dErrors.CodeValidation, "name is not allowed")
	}
	if r.Name == "" {
		r.Name = "friend"
	}
	return nil
}

func TestWriteJSON(t *testing.T) {
	t.Run("encodes value with status", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusCreated, map[string]float64{"distance_km": 3.47})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"distance_km": 3.47}`, w.Body.String())
	})

	t.Run("unencodable value becomes internal error", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusOK, map[string]float64{"distance_km": math.NaN()})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "internal_error"}`, w.Body.String())
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	decode := func(body string) (*greetRequest, *httptest.ResponseRecorder, bool) {
		r := httptest.NewRequest(http.MethodPost, "/greet", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[greetRequest](w, r, logger, r.Context(), "req-1")
		return req, w, ok
	}

	t.Run("empty body falls back to defaults", func(t *testing.T) {
		req, _, ok := decode("")
		require.True(t, ok)
		assert.Equal(t, "friend", req.Name)
	})

	t.Run("trims and keeps values", func(t *testing.T) {
		req, _, ok := decode(`{"name":"  Asha  ","lat":12.5}`)
		require.True(t, ok)
		assert.Equal(t, "Asha", req.Name)
		assert.Equal(t, 12.5, req.Lat)
	})

	t.Run("malformed json is bad request", func(t *testing.T) {
		_, w, ok := decode(`{"name":`)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})

	t.Run("tag validation runs before Validate", func(t *testing.T) {
		_, w, ok := decode(`{"lat":123}`)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Validate errors are reported", func(t *testing.T) {
		_, w, ok := decode(`{"name":"forbidden"}`)
		require.False(t, ok)
		assert.Contains(t, w.Body.String(), "name is not allowed")
	})
}
