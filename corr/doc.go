// Package corr holds 2D–3D correspondences (a calibrated bearing paired with
// the world point it observes) and derives the correspondence pairs the
// rotation residual operates on.
//
// A Store owns its correspondence slice for the lifetime of one solve: the
// facade that accumulates correspondences is also the only thing that reads
// Pairs, so the backing slice stays immutable for that solve's duration.
package corr
