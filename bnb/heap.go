package bnb

import "github.com/gorotate/pnpbnb/region"

// frontier is a max-heap of open regions, ordered by region.Less (Region a
// pops before Region b whenever region.Less(a, b)).
type frontier []region.Region

func (f frontier) Len() int { return len(f) }

// Less delegates to region.Less unchanged: container/heap's Pop always
// removes index 0 after sifting the smallest element there, so to pop the
// highest-priority region first, that region must sort as "less" in the
// heap's own ordering, which is exactly what region.Less reports.
func (f frontier) Less(i, j int) bool { return region.Less(f[i], f[j]) }

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(region.Region)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
