package domain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	dErrors "agriai/pkg/domain-errors"
)

// Location is a WGS84 coordinate pair in decimal degrees.
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// CropOffer is one crop a seller has available.
type CropOffer struct {
	Name         string   `json:"name" validate:"max=128"`
	Quantity     Quantity `json:"quantity" validate:"gte=0"`
	UnitPrice    float64  `json:"unit_price" validate:"gte=0"`
	QualityScore float64  `json:"quality_score" validate:"gte=0,lte=10"`
}

// Quantity is an amount of produce. The web client sends it either as a
// JSON number or as a numeric string read from a DOM attribute, so both are
// accepted. null and "" decode to zero.
type Quantity float64

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*q = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return dErrors.New(dErrors.CodeInvalidInput, "quantity must be a number")
		}
		*q = Quantity(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*q = Quantity(f)
	return nil
}
