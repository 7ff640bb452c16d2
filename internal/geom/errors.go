package geom

import "errors"

// ErrSingularCalibration indicates a Calibration whose focal lengths cannot
// be inverted (fx or fy is zero or not finite): a configuration error,
// fatal, surfaced at the call site.
var ErrSingularCalibration = errors.New("geom: calibration is singular (fx or fy is zero/non-finite)")
