package handler

import (
	"strings"

	"agriai/internal/delivery"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
)

// UpsertRequest is the body of POST /api/delivery.
type UpsertRequest struct {
	TrackingID  string         `json:"tracking_id"`
	Status      string         `json:"status" validate:"max=64"`
	Stages      []StageRequest `json:"stages" validate:"max=20,dive"`
	Origin      string         `json:"origin" validate:"max=256"`
	Destination string         `json:"destination" validate:"max=256"`

	parsedTrackingID domain.TrackingID
}

type StageRequest struct {
	Name string `json:"name" validate:"max=128"`
	Done bool   `json:"done"`
}

// Validate implements httputil.Validatable.
func (r *UpsertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.TrackingID) == "" {
		return nil
	}
	id, err := domain.ParseTrackingID(r.TrackingID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	r.parsedTrackingID = id
	return nil
}

func (r *UpsertRequest) Model() delivery.Upsert {
	var stages []delivery.Stage
	if r.Stages != nil {
		stages = make([]delivery.Stage, 0, len(r.Stages))
		for _, s := range r.Stages {
			stages = append(stages, delivery.Stage{Name: s.Name, Done: s.Done})
		}
	}
	return delivery.Upsert{
		TrackingID:  r.parsedTrackingID,
		Status:      r.Status,
		Stages:      stages,
		Origin:      r.Origin,
		Destination: r.Destination,
	}
}
