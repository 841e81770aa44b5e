package handler

import "agriai/internal/cultivation"

// CultivationResponse is the response for GET /api/cultivation/{crop_key}.
type CultivationResponse struct {
	Crop  string             `json:"crop"`
	Steps []cultivation.Step `json:"steps"`
}
