package solver

import "errors"

// ErrBadThreshold indicates New was given a threshold that is
// negative, zero, or NaN. A rotation/translation threshold of zero or less
// admits no inliers at all and is never a meaningful configuration.
var ErrBadThreshold = errors.New("solver: threshold must be positive and finite")
