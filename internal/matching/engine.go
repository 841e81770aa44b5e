// Package matching pairs buyers with seller offers by distance, crop,
// quality and budget, and ranks the pairs by a weighted score.
//
//	score = 0.3 * (10 - min(distance/20, 10))
//	      + 0.4 * (quality/10)
//	      + 0.3 * (1 - min(total/budget, 1))
package matching

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

const (
	proximityWeight = 0.3
	qualityWeight   = 0.4
	budgetWeight    = 0.3

	kmPerProximityPoint = 20.0
	maxProximityPoints  = 10.0
)

// Match evaluates every buyer, seller and offer triple and returns the
// survivors sorted by descending score. Ties are broken by distance, then by
// buyer, seller and crop so that output is stable. A zero radius
// admits only co-located pairs.
func Match(buyers []Buyer, sellers []Seller, maxDistanceKm float64) []Result {
	results := make([]Result, 0)
	for _, b := range buyers {
		wanted := strings.ToLower(strings.TrimSpace(b.CropWanted))
		budget := b.MaxBudget
		if budget <= 0 {
			budget = UnboundedBudget
		}

		for _, s := range sellers {
			dist := DistanceKm(b.Location, s.Location)
			if dist > maxDistanceKm {
				continue
			}
			name := s.Name
			if name == "" {
				name = defaultSellerName
			}

			for _, offer := range s.Crops {
				offered := strings.ToLower(strings.TrimSpace(offer.Name))
				if !cropsCompatible(wanted, offered) {
					continue
				}
				if offer.QualityScore < b.MinQuality {
					continue
				}
				qty := float64(offer.Quantity)
				total := qty * offer.UnitPrice
				if total > budget {
					continue
				}

				results = append(results, Result{
					BuyerID:      b.ID,
					SellerID:     s.ID,
					SellerName:   name,
					Crop:         offer.Name,
					Quantity:     qty,
					UnitPrice:    offer.UnitPrice,
					TotalPrice:   round2(total),
					QualityScore: offer.QualityScore,
					DistanceKm:   round2(dist),
					MatchScore:   round2(Score(dist, offer.QualityScore, total, budget)),
				})
			}
		}
	}

	slices.SortStableFunc(results, compareResults)
	return results
}

// Score is the unrounded match score. budget must be positive.
func Score(distanceKm, quality, total, budget float64) float64 {
	proximity := maxProximityPoints - math.Min(distanceKm/kmPerProximityPoint, maxProximityPoints)
	headroom := 1 - math.Min(total/budget, 1)
	return proximityWeight*proximity + qualityWeight*(quality/10) + budgetWeight*headroom
}

// cropsCompatible reports whether either normalized name contains the
// other. An empty wanted crop matches everything; an empty offer matches
// nothing.
func cropsCompatible(wanted, offered string) bool {
	if offered == "" {
		return false
	}
	return strings.Contains(offered, wanted) || strings.Contains(wanted, offered)
}

func compareResults(a, b Result) int {
	return cmp.Or(
		cmp.Compare(b.MatchScore, a.MatchScore),
		cmp.Compare(a.DistanceKm, b.DistanceKm),
		strings.Compare(a.BuyerID, b.BuyerID),
		strings.Compare(a.SellerID, b.SellerID),
		strings.Compare(a.Crop, b.Crop),
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
