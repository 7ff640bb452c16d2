package bnb

import (
	"math"
	"time"
)

// Options configures a Search run.
//
// ExtentFloor – once a popped region's Extent() is at or below this value,
//
//	it is never subdivided further (it is still scored and can still
//	become the incumbent). Default 0 (subdivide until Extent underflows
//	to exactly 0, which only a degenerate seed region reaches).
//
// MaxRegions  – a cap on how many regions may ever be pushed onto the open
//
//	heap. Once reached, Search stops opening new regions and returns
//	the best incumbent found so far. Default math.MaxInt (no cap).
//
// Deadline    – a wall-clock time after which Search stops and returns the
//
//	best incumbent found so far. Zero value (time.Time{}) means no
//	deadline.
type Options struct {
	ExtentFloor float64
	MaxRegions  int
	Deadline    time.Time
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the default configuration: no extent floor beyond
// exact zero, no region cap, no deadline.
func DefaultOptions() Options {
	return Options{
		ExtentFloor: 0,
		MaxRegions:  math.MaxInt,
	}
}

// WithExtentFloor stops subdivision once a region's Extent() is at or below
// floor. Must be non-negative.
func WithExtentFloor(floor float64) Option {
	return func(o *Options) {
		if floor < 0 {
			panic(ErrBadExtentFloor.Error())
		}
		o.ExtentFloor = floor
	}
}

// WithMaxRegions caps the number of regions Search will ever open. Must be
// positive.
func WithMaxRegions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxRegions.Error())
		}
		o.MaxRegions = n
	}
}

// WithDeadline stops Search at the given wall-clock time, returning the best
// incumbent found so far rather than an error.
func WithDeadline(t time.Time) Option {
	return func(o *Options) {
		o.Deadline = t
	}
}
