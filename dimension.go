package hashgrid

import (
	"fmt"

	"github.com/hengadev/errsx"
)

// Dimension names one dimension and lists the coordinate each value has
// along it, for the parallel-sequence constructors.
type Dimension struct {
	Name string
	Keys []any
}

// pairsFromDimensions lines parallel coordinate sequences up into
// (keys, value) pairs. Every sequence must match len(values); mismatches
// are reported together, keyed by dimension name.
func pairsFromDimensions(values []any, dims []Dimension) ([]Pair, []string, error) {
	var lenErrs errsx.Map
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
		if names[i] == "" {
			names[i] = defaultDimensionName(i)
		}
		if len(d.Keys) != len(values) {
			lenErrs.Set(names[i], fmt.Errorf(
				"has %d coordinate(s) for %d value(s)", len(d.Keys), len(values)))
		}
	}
	if !lenErrs.IsEmpty() {
		return nil, nil, fmt.Errorf("%w: %s", ErrDimensionMismatch, lenErrs.AsError())
	}

	pairs := make([]Pair, len(values))
	for v := range values {
		keys := make([]any, len(dims))
		for i, d := range dims {
			keys[i] = d.Keys[v]
		}
		pairs[v] = Pair{Keys: keys, Value: values[v]}
	}
	return pairs, names, nil
}

// Default dimension names follow coordinate convention: x, y, z, then the
// rest of the alphabet, then numbered dimensions. Deterministic so two
// grids built the same way always name their dimensions the same way.
var dimensionAlphabet = []string{
	"x", "y", "z",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w",
}

func defaultDimensionName(i int) string {
	if i < len(dimensionAlphabet) {
		return dimensionAlphabet[i]
	}
	return fmt.Sprintf("d%d", i)
}

func defaultDimensionNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = defaultDimensionName(i)
	}
	return names
}
