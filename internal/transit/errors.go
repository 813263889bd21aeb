package transit

import "errors"

// Errors returned by crossing-time searches.
var (
	// ErrInvalidQuery indicates a malformed query: an unknown channel,
	// an out-of-range target, a bad step schedule, or a set-direction
	// azimuth crossing (only ascending azimuth crossings are supported).
	ErrInvalidQuery = errors.New("invalid transit query")

	// ErrCrossingNotFound indicates the coarse pass exhausted the search
	// horizon without bracketing a crossing.
	ErrCrossingNotFound = errors.New("no crossing within search horizon")

	// ErrSearchInternal indicates a refinement pass failed to re-find a
	// bracket inside its parent bracket. This points at a channel that
	// oscillates faster than the parent step can see.
	ErrSearchInternal = errors.New("refinement lost the crossing bracket")
)
