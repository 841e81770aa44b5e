package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and services translate them into domain errors:
//   - ErrNotFound: no record under the requested key
//   - ErrTooLarge: input exceeds a configured resource bound
//
// For bad input from clients use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrTooLarge = errors.New("too large")
)
