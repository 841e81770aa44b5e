// Package fertilizer maps a crop, and optionally a detected disease, to
// fertilizer lists.
package fertilizer

import (
	"slices"
	"strings"

	keys "agriai/pkg/platform/strings"
)

// NoDisease is reported when no disease was supplied.
const NoDisease = "None"

// Recommendation is the lookup result.
type Recommendation struct {
	Crop              string   `json:"crop"`
	Base              []string `json:"base_fertilizers"`
	Corrective        []string `json:"corrective_fertilizers"`
	DiseaseConsidered string   `json:"disease_considered"`
}

// Recommend looks up base fertilizers for crop and corrective ones for
// disease. Crop is echoed back unmodified.
func Recommend(crop, disease string) Recommendation {
	out := Recommendation{
		Crop:              crop,
		Base:              slices.Clone(defaultBase),
		Corrective:        []string{},
		DiseaseConsidered: NoDisease,
	}
	if items, ok := lookup(cropTable, keys.NormalizeKey(crop)); ok {
		out.Base = items
	}
	if strings.TrimSpace(disease) != "" {
		out.DiseaseConsidered = disease
		if items, ok := lookup(diseaseTable, keys.NormalizeKey(disease)); ok {
			out.Corrective = items
		}
	}
	return out
}

// KnownCrop reports whether crop resolves to a table entry rather than the
// default list.
func KnownCrop(crop string) bool {
	_, ok := lookup(cropTable, keys.NormalizeKey(crop))
	return ok
}

// lookup returns a copy of the items of the exact entry for key, or of the
// longest entry overlapping it.
func lookup(table []entry, key string) ([]string, bool) {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.key
	}
	idx := keys.BestOverlap(key, names)
	if idx < 0 {
		return nil, false
	}
	return slices.Clone(table[idx].items), true
}
