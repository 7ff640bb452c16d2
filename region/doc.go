// Package region represents subsets of SO(3) that the branch-and-bound
// search in package bnb explores, one Region contract realized by two
// concrete variants.
//
// AxisAngleCube tiles an axis-aligned cube in axis-angle (Rodrigues vector)
// space; PolarAxisAngle tiles a Cartesian product of a spherical axis
// (θ polar, φ azimuth) and a rotation angle. Both expose the same contract
// — Rotation (a representative center), Subdivide (eight children tiling
// the parent), Bound (compute the region's lower/upper inlier counts once)
// — so the search engine in package bnb is written once against Region and
// never needs to know which variant it is driving. This single-contract
// design replaces the original Rust source's ad-hoc, partially duplicated
// RBound/RBounds/RBound2 trait hierarchy (_examples/original_source/src/bounds*.rs)
// with one interface and two implementations.
package region
