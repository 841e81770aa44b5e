package handler

import "agriai/internal/disease"

// PredictResponse is the response for POST /api/disease-predict.
type PredictResponse struct {
	disease.Prediction
	UploadedURL string `json:"uploaded_url"`
}
