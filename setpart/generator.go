package setpart

import (
	"fmt"
	"iter"
)

// state of a Generator between advances.
type state uint8

const (
	statePrimed state = iota
	stateActive
	stateDone
)

// Generator enumerates the set partitions of a fixed item sequence.
// It is single-owner and not safe for concurrent use.
type Generator[T any] struct {
	items   []T
	rgs     []int // rgs[i] is the group of items[i]
	peak    []int // peak[i] = max(rgs[0..i])
	state   state
	total   uint64
	yielded uint64
}

// New returns a generator over items, primed before the single-group
// grouping. The total grouping count is computed eagerly from the configured
// bell.Table.
//
// Errors:
//   - ErrEmptySequence — len(items) == 0.
//   - bell.ErrOverflow — B(len(items)) does not fit in a uint64 (n > 25).
//   - bell.ErrLevelTooLarge — len(items) > bell.MaxLevel.
//
// The generator keeps a reference to items; do not mutate it mid-enumeration.
func New[T any](items []T, opts ...Option) (*Generator[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	total, err := o.Table.Count(len(items), 1)
	if err != nil {
		return nil, fmt.Errorf("setpart: grouping count for %d items: %w", len(items), err)
	}
	g := newGenerator(items)
	g.total = total

	return g, nil
}

// newGenerator builds a generator without consulting a count table.
func newGenerator[T any](items []T) *Generator[T] {
	return &Generator[T]{
		items: items,
		rgs:   make([]int, len(items)),
		peak:  make([]int, len(items)),
		state: statePrimed,
	}
}

// Len returns the total number of groupings, B(n). It is zero for
// generators not built by New.
func (g *Generator[T]) Len() uint64 {
	return g.total
}

// Yielded returns how many groupings have been produced so far.
func (g *Generator[T]) Yielded() uint64 {
	return g.yielded
}

// Next returns the next grouping, or ok=false once every grouping has been
// produced. The group count equals 1 + the largest group index in use.
func (g *Generator[T]) Next() (groups [][]T, ok bool) {
	switch g.state {
	case stateDone:
		return nil, false
	case statePrimed:
		g.state = stateActive
	default:
		if !g.advance() {
			g.state = stateDone
			if g.total != 0 && g.yielded != g.total {
				tracer().Errorf("setpart: produced %d groupings, expected %d", g.yielded, g.total)
			}
			tracer().Debugf("setpart: %d items exhausted after %d groupings", len(g.items), g.yielded)

			return nil, false
		}
	}
	g.yielded++

	return g.materialize(), true
}

// Assignment returns a view of the restricted-growth string behind the last
// grouping returned by Next: item i belongs to group Assignment()[i]. The
// view is overwritten by the next advance.
func (g *Generator[T]) Assignment() []int {
	return g.rgs
}

// All returns a sequence over the remaining groupings.
func (g *Generator[T]) All() iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		for groups, ok := g.Next(); ok; groups, ok = g.Next() {
			if !yield(groups) {
				return
			}
		}
	}
}

// Partitions returns a lazy sequence over every grouping of items. An empty
// input yields nothing. Unlike New it needs no count table and so has no
// upper limit on len(items).
func Partitions[T any](items []T) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		if len(items) == 0 {
			return
		}
		newGenerator(items).All()(yield)
	}
}

// advance moves rgs to its successor and reports whether one exists.
//
// Scanning right to left, the first position i ≥ 1 with
// rgs[i] < 1 + max(rgs[0..i)) is incremented, and every later position is
// reset to group 0. Position 0 is always group 0.
func (g *Generator[T]) advance() bool {
	for i := len(g.rgs) - 1; i >= 1; i-- {
		if g.rgs[i] > g.peak[i-1] {
			continue
		}
		g.rgs[i]++
		g.peak[i] = max(g.peak[i-1], g.rgs[i])
		for j := i + 1; j < len(g.rgs); j++ {
			g.rgs[j] = 0
			g.peak[j] = g.peak[i]
		}

		return true
	}

	return false
}

// materialize builds fresh group slices from rgs.
func (g *Generator[T]) materialize() [][]T {
	groups := make([][]T, g.peak[len(g.peak)-1]+1)
	for i, grp := range g.rgs {
		groups[grp] = append(groups[grp], g.items[i])
	}

	return groups
}
