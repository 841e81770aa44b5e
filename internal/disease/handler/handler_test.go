package handler

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/internal/disease"
	"agriai/pkg/testutil"
)

func pngBytes(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newDiseaseRouter(t *testing.T, uploads Uploads) (http.Handler, string) {
	t.Helper()
	if uploads.Dir == "" {
		uploads.Dir = t.TempDir()
	}
	if uploads.AllowedExtensions == nil {
		uploads.AllowedExtensions = []string{"png", "jpg", "jpeg"}
	}
	if uploads.MaxBytes == 0 {
		uploads.MaxBytes = disease.DefaultMaxBytes
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(disease.NewClassifier(disease.WithLogger(logger)), uploads, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r, uploads.Dir
}

func TestHandlePredict(t *testing.T) {
	router, dir := newDiseaseRouter(t, Uploads{})

	req := testutil.NewMultipartRequest(t, "/api/disease-predict", "image", "My Leaf.PNG", pngBytes(t, color.NRGBA{0, 0, 0, 255}))
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[PredictResponse](t, rr)
	assert.Equal(t, "healthy", resp.Prediction.Prediction)
	assert.Equal(t, 0.85, resp.Confidence)
	assert.Len(t, resp.AllPredictions, 4)
	assert.True(t, strings.HasPrefix(resp.UploadedURL, UploadURLPrefix))
	assert.True(t, strings.HasSuffix(resp.UploadedURL, "_My_Leaf.PNG"), resp.UploadedURL)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "upload must be removed after processing")
}

func TestHandlePredict_UndecodableImageStillCleansUp(t *testing.T) {
	router, dir := newDiseaseRouter(t, Uploads{})

	req := testutil.NewMultipartRequest(t, "/api/disease-predict", "image", "leaf.jpg", []byte("not really a jpeg"))
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[PredictResponse](t, rr)
	assert.Equal(t, "error", resp.Prediction.Prediction)
	assert.Zero(t, resp.Confidence)
	assert.NotEmpty(t, resp.Remedy)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHandlePredict_Rejections(t *testing.T) {
	router, _ := newDiseaseRouter(t, Uploads{})

	t.Run("no file part", func(t *testing.T) {
		req := testutil.NewMultipartRequest(t, "/api/disease-predict", "", "", nil)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
		testutil.AssertErrorDescription(t, rr, "No image file")
	})

	t.Run("wrong field name", func(t *testing.T) {
		req := testutil.NewMultipartRequest(t, "/api/disease-predict", "file", "leaf.png", []byte("x"))
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorDescription(t, rr, "No image file")
	})

	t.Run("not multipart", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/disease-predict", map[string]string{"image": "x"})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorDescription(t, rr, "No image file")
	})

	for _, name := range []string{"leaf.gif", "leaf", "leaf.png.exe"} {
		t.Run("extension "+name, func(t *testing.T) {
			req := testutil.NewMultipartRequest(t, "/api/disease-predict", "image", name, []byte("x"))
			rr := testutil.DoRequest(router, req)
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
			testutil.AssertErrorDescription(t, rr, "Invalid image type")
		})
	}
}

func TestHandlePredict_TooLarge(t *testing.T) {
	router, _ := newDiseaseRouter(t, Uploads{MaxBytes: 512})

	req := testutil.NewMultipartRequest(t, "/api/disease-predict", "image", "leaf.png", bytes.Repeat([]byte{1}, 4096))
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusRequestEntityTooLarge, "payload_too_large")
}

func TestHandlePredict_RateLimited(t *testing.T) {
	router, _ := newDiseaseRouter(t, Uploads{RateLimit: 1, RateWindow: time.Minute})
	body := pngBytes(t, color.NRGBA{1, 1, 1, 255})

	first := testutil.DoRequest(router, testutil.NewMultipartRequest(t, "/api/disease-predict", "image", "a.png", body))
	testutil.AssertStatus(t, first, http.StatusOK)

	second := testutil.DoRequest(router, testutil.NewMultipartRequest(t, "/api/disease-predict", "image", "b.png", body))
	testutil.AssertStatusAndError(t, second, http.StatusTooManyRequests, "rate_limited")
}

func TestHandlePredict_ZeroRateLimitDisablesLimiting(t *testing.T) {
	router, _ := newDiseaseRouter(t, Uploads{RateLimit: 0})
	body := pngBytes(t, color.NRGBA{1, 1, 1, 255})

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		rr := testutil.DoRequest(router, testutil.NewMultipartRequest(t, "/api/disease-predict", "image", name, body))
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"leaf.png", "leaf.png"},
		{"My Leaf.PNG", "My_Leaf.PNG"},
		{"../../etc/passwd", "etc_passwd"},
		{`..\..\windows\leaf.jpg`, "windows_leaf.jpg"},
		{"  .hidden.png", "hidden.png"},
		{"फसल leaf.jpeg", "leaf.jpeg"},
		{"$(rm -rf).png", "rm_-rf.png"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, secureFilename(tt.in))
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", extension("leaf.PNG"))
	assert.Equal(t, "jpeg", extension("a.b.jpeg"))
	assert.Equal(t, "", extension("leaf"))
}
