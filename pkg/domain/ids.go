package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "agriai/pkg/domain-errors"
)

// Typed identifiers for records created by this service. They are distinct
// types so that a seller id cannot be passed where a survey id is expected.
type (
	SellerID       uuid.UUID
	NotificationID uuid.UUID
	SurveyID       uuid.UUID
)

// TrackingID identifies a delivery record. Unlike the other ids it may be
// supplied by the client, so it is an opaque string rather than a UUID.
type TrackingID string

// MaxTrackingIDLength bounds client-supplied tracking ids.
const MaxTrackingIDLength = 64

func NewSellerID() SellerID             { return SellerID(uuid.New()) }
func NewNotificationID() NotificationID { return NotificationID(uuid.New()) }
func NewSurveyID() SurveyID             { return SurveyID(uuid.New()) }

// NewTrackingID generates a tracking id for deliveries created without one.
func NewTrackingID() TrackingID { return TrackingID(uuid.NewString()) }

func (id SellerID) String() string       { return uuid.UUID(id).String() }
func (id NotificationID) String() string { return uuid.UUID(id).String() }
func (id SurveyID) String() string       { return uuid.UUID(id).String() }
func (id TrackingID) String() string     { return string(id) }

func (id SellerID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id SellerID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id SurveyID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }

func (id *SellerID) UnmarshalText(b []byte) error {
	parsed, err := ParseSellerID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseSellerID parses a non-nil UUID seller id.
func ParseSellerID(s string) (SellerID, error) {
	u, err := parseUUID(s, "seller_id")
	return SellerID(u), err
}

// ParseSurveyID parses a non-nil UUID survey id.
func ParseSurveyID(s string) (SurveyID, error) {
	u, err := parseUUID(s, "survey_id")
	return SurveyID(u), err
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be nil")
	}
	return u, nil
}

// ParseTrackingID trims s and checks it is printable UTF-8 of bounded length.
// An empty input is an error; callers that accept a missing id generate one
// with NewTrackingID instead.
func ParseTrackingID(s string) (TrackingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tracking_id is required")
	}
	if !utf8.ValidString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tracking_id must be valid UTF-8")
	}
	if utf8.RuneCountInString(s) > MaxTrackingIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tracking_id is too long")
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "tracking_id contains control characters")
		}
	}
	return TrackingID(s), nil
}
