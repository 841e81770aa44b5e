package handler

import (
	"unicode/utf8"

	"agriai/internal/crop"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/validation"
)

// PredictCropRequest is the body of POST /api/predict-crop. Every field is
// optional; missing values fall back to defaults.
type PredictCropRequest struct {
	SoilColor         string `json:"soil_color" validate:"max=128"`
	PreviousCrop      string `json:"previous_crop" validate:"max=128"`
	Season            string `json:"season" validate:"max=128"`
	WaterAvailability string `json:"water_availability" validate:"max=128"`
}

// Validate implements httputil.Validatable.
func (r *PredictCropRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

func (r *PredictCropRequest) Input() crop.Input {
	return crop.Input{
		SoilColor:         r.SoilColor,
		PreviousCrop:      r.PreviousCrop,
		Season:            r.Season,
		WaterAvailability: r.WaterAvailability,
	}
}

// FertilizerRequest is the body of POST /api/fertilizer.
type FertilizerRequest struct {
	Crop            string `json:"crop" validate:"max=128"`
	DiseaseDetected string `json:"disease_detected" validate:"max=128"`
}

// Validate implements httputil.Validatable.
func (r *FertilizerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

func validateCropKey(key string) error {
	if utf8.RuneCountInString(key) > validation.MaxNameLength {
		return dErrors.New(dErrors.CodeValidation, "crop key is too long")
	}
	return nil
}
