package bnb

import "errors"

// ErrBadExtentFloor indicates WithExtentFloor was called with a negative
// value; an extent floor below zero can never be reached and would disable
// the stopping rule silently.
var ErrBadExtentFloor = errors.New("bnb: extent floor must be non-negative")

// ErrBadMaxRegions indicates WithMaxRegions was called with a non-positive
// cap; a search must be allowed to open at least one region.
var ErrBadMaxRegions = errors.New("bnb: max regions must be positive")
