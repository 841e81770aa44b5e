package handler

import "agriai/internal/delivery"

// RecordResponse is one delivery record.
type RecordResponse struct {
	TrackingID  string           `json:"tracking_id"`
	Status      string           `json:"status"`
	Stages      []delivery.Stage `json:"stages"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
}

func FromRecord(rec *delivery.Record) RecordResponse {
	stages := rec.Stages
	if stages == nil {
		stages = []delivery.Stage{}
	}
	return RecordResponse{
		TrackingID:  rec.TrackingID.String(),
		Status:      rec.Status,
		Stages:      stages,
		Origin:      rec.Origin,
		Destination: rec.Destination,
	}
}

func FromRecords(records []*delivery.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}
