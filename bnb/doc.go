// Package bnb implements a generic best-first Branch-and-Bound search over
// the region.Region contract.
//
// The search maintains a max-heap of open regions ordered by region.Less
// (highest Upper() first, ties broken by smaller Extent() then larger
// Lower()), pops the most promising region, and either accepts it as the new
// incumbent, subdivides it, or prunes it once its Upper() can no longer beat
// the incumbent: a best-first search driven by an admissible bound, with
// deterministic branch order and an optional soft deadline, built on
// container/heap.
package bnb
