// Package delivery tracks shipments by tracking id. Records are created or
// wholly replaced by id; there is no partial update.
package delivery

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/sentinel"
)

// Service manages delivery records.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Upsert creates the record for in.TrackingID, generating an id when none
// is given, or replaces the existing one entirely.
func (s *Service) Upsert(ctx context.Context, in Upsert) (*Record, error) {
	rec := &Record{
		TrackingID:  in.TrackingID,
		Status:      strings.TrimSpace(in.Status),
		Stages:      slices.Clone(in.Stages),
		Origin:      in.Origin,
		Destination: in.Destination,
	}
	if rec.TrackingID == "" {
		rec.TrackingID = domain.NewTrackingID()
	}
	if rec.Status == "" {
		rec.Status = StatusCreated
	}
	if in.Stages == nil {
		rec.Stages = DefaultStages()
	}

	replaced, err := s.store.Put(ctx, rec)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save delivery")
	}
	s.logger.InfoContext(ctx, "delivery saved",
		"tracking_id", rec.TrackingID,
		"status", rec.Status,
		"replaced", replaced,
	)
	return rec, nil
}

// Get returns the record for id or a not_found error.
func (s *Service) Get(ctx context.Context, id domain.TrackingID) (*Record, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "delivery not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load delivery")
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list deliveries")
	}
	return records, nil
}
