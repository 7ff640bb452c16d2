package bnb

import (
	"container/heap"
	"time"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/region"
)

// Incumbent is the best rotation found so far: R is the region center that
// produced the highest inlier count L seen during the search.
type Incumbent struct {
	L int
	R geom.Rotation
}

// engine holds all search state. A dedicated struct (rather than closures
// over local variables) keeps the hot loop's dependencies explicit.
type engine struct {
	pairs []corr.Pair
	tau   float64
	opts  Options

	open    frontier
	opened  int
	best    Incumbent
	steps   int
	useDead bool
}

// deadlineHit performs a sparse wall-clock check, checked only every 1024
// node events to keep the hot loop cheap.
func (e *engine) deadlineHit() bool {
	e.steps++
	if !e.useDead || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.opts.Deadline)
}

func (e *engine) considerIncumbent(r region.Region) {
	if l := r.Lower(); l > e.best.L {
		e.best = Incumbent{L: l, R: r.Rotation()}
	}
}

func (e *engine) push(r region.Region) {
	if e.opened >= e.opts.MaxRegions {
		return
	}
	e.opened++
	heap.Push(&e.open, r)
}

// run drains the frontier: best-first pop, update incumbent, prune or
// subdivide, until the frontier empties, MaxRegions closes it off, or the
// deadline (if any) passes.
func (e *engine) run() {
	for e.open.Len() > 0 {
		if e.deadlineHit() {
			return
		}

		r := heap.Pop(&e.open).(region.Region)

		// Best-first order means every region still on the heap has
		// Upper() <= r.Upper(); once r itself cannot beat the incumbent,
		// nothing remaining can either.
		if r.Upper() <= e.best.L {
			return
		}

		e.considerIncumbent(r)

		if r.Extent() <= e.opts.ExtentFloor {
			continue
		}

		for _, child := range r.Subdivide() {
			child.Bound(e.pairs, e.tau)
			e.push(child)
		}
	}
}

// Search runs best-first Branch-and-Bound starting from seed over pairs at
// threshold tau, returning the best incumbent found. seed must not yet have
// had Bound called; Search calls it exactly once before entering the loop.
//
// Search never errors: with zero pairs every region scores Lower()==Upper()
// ==0 and the returned Incumbent is {0, seed.Rotation()}, matching the
// solver facade's documented zero/one-correspondence fallback.
func Search(seed region.Region, pairs []corr.Pair, tau float64, opts ...Option) Incumbent {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	seed.Bound(pairs, tau)

	e := &engine{
		pairs:   pairs,
		tau:     tau,
		opts:    cfg,
		best:    Incumbent{L: seed.Lower(), R: seed.Rotation()},
		useDead: !cfg.Deadline.IsZero(),
	}
	e.open = make(frontier, 0, 64)
	e.push(seed)

	e.run()

	return e.best
}
