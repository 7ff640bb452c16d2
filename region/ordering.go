package region

// Less implements the total order the search frontier requires: primarily
// descending Upper() (larger U pops first), then
// ascending Extent() (a smaller, more-refined region is tried first among
// equally-promising ones — it tends to tighten U to L fastest), then
// descending Lower(). Less(a, b) reports whether a should pop before b,
// i.e. whether a has *higher* priority.
//
// Upper/Lower are integers and cannot be NaN. Extent can, if an exported
// geometric field is overwritten after construction, so Less re-checks both
// Extents and panics on NaN; this keeps the comparator a true total order,
// which container/heap's invariants require.
func Less(a, b Region) bool {
	checkFinite("a.Extent()", a.Extent())
	checkFinite("b.Extent()", b.Extent())

	au, bu := a.Upper(), b.Upper()
	if au != bu {
		return au > bu
	}

	ae, be := a.Extent(), b.Extent()
	if ae != be {
		return ae < be
	}

	return a.Lower() > b.Lower()
}
