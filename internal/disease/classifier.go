// Package disease assigns a placeholder disease label to a plant image from
// its average color. It is a stand-in for a real model and makes no claim
// about plant health.
package disease

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"agriai/internal/disease/metrics"
	"agriai/pkg/platform/sentinel"
)

const (
	DefaultMaxBytes  = 16 << 20
	DefaultMaxPixels = 40_000_000
)

// Ranked is one entry of all_predictions.
type Ranked struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Prediction is the classifier output.
type Prediction struct {
	Prediction     string   `json:"prediction"`
	Label          string   `json:"label"`
	Confidence     float64  `json:"confidence"`
	Remedy         string   `json:"remedy"`
	AllPredictions []Ranked `json:"all_predictions"`
}

// Classifier runs the color heuristic with size guards on its input.
type Classifier struct {
	maxBytes  int64
	maxPixels int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Classifier.
type Option func(*Classifier)

func WithMaxBytes(n int64) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

func WithMaxPixels(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxPixels = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Classifier) {
		c.metrics = m
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		maxBytes:  DefaultMaxBytes,
		maxPixels: DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PredictFile classifies the image at path. A missing or non-regular file
// yields the unknown result; any decode failure yields the error result.
// It never returns a Go error.
func (c *Classifier) PredictFile(path string) Prediction {
	start := time.Now()
	pred := c.predictFile(path)
	c.metrics.ObservePrediction(pred.Prediction, time.Since(start))
	return pred
}

func (c *Classifier) predictFile(path string) Prediction {
	if path == "" {
		return Unknown()
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Unknown()
	}
	if info.Size() > c.maxBytes {
		return c.failed(path, fmt.Errorf("%w: image is %d bytes, limit is %d", sentinel.ErrTooLarge, info.Size(), c.maxBytes))
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown()
	}
	defer f.Close()

	img, err := c.decode(f)
	if err != nil {
		return c.failed(path, err)
	}
	idx, err := LabelIndex(img)
	if err != nil {
		return c.failed(path, err)
	}
	return FromLabel(idx)
}

// decode checks the header dimensions before decoding the full image.
func (c *Classifier) decode(f io.ReadSeeker) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("image has no pixels")
	}
	if cfg.Width > c.maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: image is %dx%d pixels", sentinel.ErrTooLarge, cfg.Width, cfg.Height)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(f)
	return img, err
}

func (c *Classifier) failed(path string, err error) Prediction {
	if c.logger != nil {
		c.logger.Warn("image analysis failed", "path", path, "error", err)
	}
	return Failed(err)
}

// LabelIndex computes the mean of each 8-bit color channel, averages the
// three means, truncates and reduces modulo the number of labels. Alpha is
// ignored.
func LabelIndex(img image.Image) (int, error) {
	b := img.Bounds()
	n := uint64(b.Dx()) * uint64(b.Dy())
	if b.Empty() || n == 0 {
		return 0, errors.New("image has no pixels")
	}
	var sumR, sumG, sumB uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sumR += uint64(p.R)
			sumG += uint64(p.G)
			sumB += uint64(p.B)
		}
	}
	total := float64(n)
	avg := (float64(sumR)/total + float64(sumG)/total + float64(sumB)/total) / 3
	return int(avg) % len(Labels), nil
}

// FromLabel builds the prediction for Labels[idx].
func FromLabel(idx int) Prediction {
	l := Labels[idx]
	ranked := make([]Ranked, 0, rankedCount)
	for i, other := range Labels[:rankedCount] {
		ranked = append(ranked, Ranked{
			Name:       other.Name,
			Confidence: round2(math.Max(minRanked, l.Confidence-rankStep*float64(i+1))),
		})
	}
	return Prediction{
		Prediction:     l.ID,
		Label:          l.Name,
		Confidence:     round2(l.Confidence),
		Remedy:         l.Remedy,
		AllPredictions: ranked,
	}
}

// Unknown is returned when there is no readable image.
func Unknown() Prediction {
	return Prediction{
		Prediction:     PredictionUnknown,
		Label:          "No image",
		Confidence:     0,
		Remedy:         "Please upload a clear leaf/plant image.",
		AllPredictions: []Ranked{},
	}
}

// Failed reports an analysis failure with the error text as remedy.
func Failed(err error) Prediction {
	return Prediction{
		Prediction:     PredictionError,
		Label:          "Analysis failed",
		Confidence:     0,
		Remedy:         err.Error(),
		AllPredictions: []Ranked{},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
