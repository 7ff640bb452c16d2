// Package solver is the facade a caller actually talks to: it accumulates
// 2D-3D correspondences, picks a rotation-region parameterization, drives
// package bnb's search, and reports the globally-optimal rotation (plus an
// optional, separately-opted-into translation estimate).
//
// Solve never fails: with fewer than two correspondences it returns the
// identity rotation rather than an error. Construction-time arguments are
// still validated eagerly (New panics on a bad threshold, Add panics on a
// singular calibration) — it is only a well-formed but too-small
// correspondence set that degrades gracefully instead of erroring out.
package solver
