package region

import "fmt"

// checkFinite panics if x is NaN: NaN in any geometric field is a
// programmer error and must cause a fatal check.
func checkFinite(field string, x float64) {
	if x != x { // NaN != NaN, the portable way to test without importing math here
		panic(fmt.Sprintf("region: %s is NaN", field))
	}
}
