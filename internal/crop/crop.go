// Package crop recommends crops from season, water, soil and rotation rules.
//
// Every candidate in the season or water list is scored +2 for each list it
// appears in and -2 when it shares a botanical family with the previous
// crop. Non-positive scores are dropped; the five best remain.
package crop

import (
	"fmt"
	"slices"
	"strings"

	keys "agriai/pkg/platform/strings"
)

// MaxRecommendations caps the recommended list.
const MaxRecommendations = 5

// Input is the raw, unnormalized request to the scorer. Every field is
// optional.
type Input struct {
	SoilColor         string
	PreviousCrop      string
	Season            string
	WaterAvailability string
}

// Crop is one recommended crop.
type Crop struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Recommendation is the scorer's output.
type Recommendation struct {
	Crops    []Crop `json:"recommended_crops"`
	SoilType string `json:"soil_type"`
	Message  string `json:"message"`
}

// Recommend scores candidates and returns the top crops. It never fails:
// unknown or missing inputs fall back to defaults.
func Recommend(in Input) Recommendation {
	soil := keys.NormalizeKey(in.SoilColor)
	previous := keys.NormalizeKey(in.PreviousCrop)
	season := keys.NormalizeKey(in.Season)
	water := keys.NormalizeKey(in.WaterAvailability)
	if water == "" {
		water = defaultWater
	}

	seasonList := SeasonList(season)
	waterList := WaterList(water)
	avoid := Family(previous)

	type scored struct {
		key   string
		score int
	}
	var candidates []scored
	for _, key := range keys.DedupeKeys(append(slices.Clone(seasonList), waterList...)) {
		if s := Score(key, seasonList, waterList, avoid); s > 0 {
			candidates = append(candidates, scored{key: key, score: s})
		}
	}
	slices.SortFunc(candidates, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return strings.Compare(a.key, b.key)
	})

	chosen := make([]string, 0, MaxRecommendations)
	for _, c := range candidates {
		if len(chosen) == MaxRecommendations {
			break
		}
		chosen = append(chosen, c.key)
	}
	if len(chosen) == 0 {
		chosen = slices.Clone(fallback)
	}

	out := Recommendation{
		Crops:    make([]Crop, 0, len(chosen)),
		SoilType: SoilType(soil),
		Message:  message(soil, previous, season, water),
	}
	for _, key := range chosen {
		out.Crops = append(out.Crops, Crop{Name: keys.TitleWords(key), Key: key})
	}
	return out
}

// Score applies the scoring rule to one candidate key. avoidFamily may be
// empty, in which case no rotation penalty applies.
func Score(key string, seasonList, waterList []string, avoidFamily string) int {
	score := 0
	if slices.Contains(seasonList, key) {
		score += 2
	}
	if slices.Contains(waterList, key) {
		score += 2
	}
	if avoidFamily != "" && Family(key) == avoidFamily {
		score -= 2
	}
	return score
}

// SeasonList returns the crops suited to a normalized season key, or the
// union of the default seasons when the key is unknown.
func SeasonList(season string) []string {
	if list, ok := seasonCrops[season]; ok {
		return list
	}
	var union []string
	for _, s := range defaultSeasons {
		union = append(union, seasonCrops[s]...)
	}
	return union
}

// WaterList returns the crops suited to a normalized water key, or the
// medium list when the key is unknown.
func WaterList(water string) []string {
	if list, ok := waterCrops[water]; ok {
		return list
	}
	return waterCrops[defaultWater]
}

// Family returns the botanical family of a normalized crop key, or "" when
// none is known. An exact key wins; otherwise the longest family key that
// overlaps the crop is used.
func Family(cropKey string) string {
	idx := keys.BestOverlap(cropKey, familyKeys)
	if idx < 0 {
		return ""
	}
	return families[idx].family
}

// Fallback returns the list recommended when no candidate scores positive.
func Fallback() []string {
	return slices.Clone(fallback)
}

// SoilType maps a normalized soil color to a soil type.
func SoilType(color string) string {
	if t, ok := soilTypes[color]; ok {
		return t
	}
	return "general"
}

func message(soil, previous, season, water string) string {
	if soil == "" {
		soil = "your"
	}
	if previous == "" {
		previous = "none"
	}
	if season == "" {
		season = "any"
	}
	return fmt.Sprintf("Based on %s soil, previous crop (%s), %s season, and %s water availability.",
		soil, previous, season, water)
}
