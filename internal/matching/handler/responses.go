package handler

import "agriai/internal/matching"

// MatchResponse is the body returned by POST /api/match.
type MatchResponse struct {
	Matches []matching.Result `json:"matches"`
}
