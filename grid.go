package hashgrid

import (
	"fmt"

	"github.com/gregmconan/hashgrid/internal/combiner"
)

// Pair couples one key combination with the value stored under it.
type Pair struct {
	Keys  []any
	Value any
}

// Grid maps combinations of keys to values by hash address, the way a grid
// maps one set of coordinates to one point. Each grid has a fixed number of
// dimensions: a key must be supplied for every dimension on every access.
//
// A grid never retains the keys themselves. Entries are stored under a
// 64-bit address derived from the serialized key combination, so there is
// no operation that enumerates stored addresses back to keys. The flip side
// is the collision policy: if two distinct combinations land on the same
// address, the later Set silently overwrites the earlier entry. Widening
// the address space would only shrink that risk, not remove it, and
// chaining would require keeping the original keys around, which is exactly
// what the structure promises not to do.
//
// Ordered grids are position-sensitive: (1, 2) and (2, 1) address different
// entries. Unordered grids address by key multiset: every permutation of
// the same keys reaches the same entry, while duplicate counts still
// matter, so (1, 1, 2) and (1, 2, 2) stay distinct.
//
// A Grid is not safe for concurrent mutation; callers that share one across
// goroutines must serialize access themselves.
type Grid struct {
	ordered  bool
	arity    int
	dimNames []string
	entries  map[uint64]any
}

// NewOrdered creates an empty position-sensitive grid. Dimension names are
// optional; when given they fix the grid's arity, otherwise the arity is
// fixed by the first combination stored.
func NewOrdered(dimNames ...string) *Grid {
	return newGrid(true, dimNames)
}

// NewUnordered creates an empty order-insensitive grid. Dimension names are
// optional; when given they fix the grid's arity, otherwise the arity is
// fixed by the first combination stored.
func NewUnordered(dimNames ...string) *Grid {
	return newGrid(false, dimNames)
}

func newGrid(ordered bool, dimNames []string) *Grid {
	g := &Grid{
		ordered: ordered,
		entries: make(map[uint64]any),
	}
	if len(dimNames) > 0 {
		g.arity = len(dimNames)
		g.dimNames = append([]string(nil), dimNames...)
	}
	return g
}

// FromPairs creates an ordered grid from (keys, value) pairs.
func FromPairs(pairs []Pair, dimNames ...string) (*Grid, error) {
	return gridFromPairs(true, pairs, dimNames)
}

// UnorderedFromPairs creates an unordered grid from (keys, value) pairs.
func UnorderedFromPairs(pairs []Pair, dimNames ...string) (*Grid, error) {
	return gridFromPairs(false, pairs, dimNames)
}

func gridFromPairs(ordered bool, pairs []Pair, dimNames []string) (*Grid, error) {
	g := newGrid(ordered, dimNames)
	for _, p := range pairs {
		if err := g.Set(p.Value, p.Keys...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromDimensions creates an ordered grid from a value sequence plus one
// coordinate sequence per dimension: values[i] is stored under the
// combination (dims[0].Keys[i], dims[1].Keys[i], ...). Every coordinate
// sequence must be exactly as long as values.
func FromDimensions(values []any, dims ...Dimension) (*Grid, error) {
	return gridFromDimensions(true, values, dims)
}

// UnorderedFromDimensions is FromDimensions with order-insensitive
// addressing.
func UnorderedFromDimensions(values []any, dims ...Dimension) (*Grid, error) {
	return gridFromDimensions(false, values, dims)
}

func gridFromDimensions(ordered bool, values []any, dims []Dimension) (*Grid, error) {
	pairs, names, err := pairsFromDimensions(values, dims)
	if err != nil {
		return nil, err
	}
	return gridFromPairs(ordered, pairs, names)
}

// Set stores value under the given key combination, overwriting any entry
// already at that address. It either fully succeeds or leaves the grid
// untouched.
func (g *Grid) Set(value any, keys ...any) error {
	addr, err := g.address(keys)
	if err != nil {
		return err
	}
	g.commitArity(len(keys))
	g.entries[addr] = value
	return nil
}

// Get returns the value stored under the given key combination, or
// ErrNotFound if nothing is stored there.
func (g *Grid) Get(keys ...any) (any, error) {
	addr, err := g.address(keys)
	if err != nil {
		return nil, err
	}
	value, ok := g.entries[addr]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// GetOr returns the value stored under the given key combination, or def
// when nothing is stored there. Usage errors are still reported.
func (g *Grid) GetOr(def any, keys ...any) (any, error) {
	value, err := g.Get(keys...)
	if IsLookupMiss(err) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Has reports whether a value is stored under the given key combination.
func (g *Grid) Has(keys ...any) (bool, error) {
	addr, err := g.address(keys)
	if err != nil {
		return false, err
	}
	_, ok := g.entries[addr]
	return ok, nil
}

// Delete removes the entry stored under the given key combination. Deleting
// an absent combination is a no-op.
func (g *Grid) Delete(keys ...any) error {
	addr, err := g.address(keys)
	if err != nil {
		return err
	}
	delete(g.entries, addr)
	return nil
}

// Len returns the number of stored entries.
func (g *Grid) Len() int {
	return len(g.entries)
}

// Arity returns the number of dimensions, or 0 while the grid is still
// empty with no explicit dimension names.
func (g *Grid) Arity() int {
	return g.arity
}

// DimensionNames returns the names of the grid's dimensions, in order.
func (g *Grid) DimensionNames() []string {
	return append([]string(nil), g.dimNames...)
}

// address validates the key count against the established arity and
// computes the hash address.
func (g *Grid) address(keys []any) (uint64, error) {
	if err := checkArity(g.arity, len(keys)); err != nil {
		return 0, err
	}
	addr, _, err := combiner.Combine(keys, g.ordered)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnhashableKey, err)
	}
	return addr, nil
}

// commitArity fixes the grid's dimension count at the first successful Set.
// It runs only after the keys have serialized, so a failed first call
// leaves the grid untouched.
func (g *Grid) commitArity(n int) {
	if g.arity == 0 {
		g.arity = n
		if len(g.dimNames) == 0 {
			g.dimNames = defaultDimensionNames(n)
		}
	}
}

func checkArity(arity, got int) error {
	if got == 0 {
		return fmt.Errorf("%w: at least one key is required", ErrArityMismatch)
	}
	if arity != 0 && got != arity {
		return fmt.Errorf("%w: grid has %d dimension(s), got %d key(s)",
			ErrArityMismatch, arity, got)
	}
	return nil
}
