package bell

import (
	"fmt"
	"math"
	"math/bits"
	"sync"
)

// saturated marks a cell whose true value exceeds uint64. Every cell that
// depends on a saturated cell is saturated as well.
const saturated = math.MaxUint64

// Table is a memoized count(n, m) table.
//
// Cells are stored flat. Level ℓ = n+m-2 holds the ℓ+1 pairs
// (1, ℓ+1), (2, ℓ), …, (ℓ+1, 1) at offset ℓ(ℓ+1)/2, ordered by n.
// A cell (n, m) reads (n-1, m) from level ℓ-1 and (n-1, m+1) from the
// preceding cell of its own level, so a level is filled in one left-to-right
// pass once the level below is complete.
//
// The table only ever grows. Levels below Levels() are immutable and may be
// read concurrently; extension takes the write lock.
type Table struct {
	mu     sync.RWMutex
	cells  []uint64
	levels int // levels 0..levels-1 are complete
}

// Default is the process-wide table used by Count and Bell.
var Default = NewTable()

// NewTable returns an empty table, optionally prefilled.
//
// Example:
//
//	t := bell.NewTable(bell.WithPrefill(12)) // Bell(1)..Bell(12) are O(1)
func NewTable(opts ...Option) *Table {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{}
	if o.Prefill > 0 {
		t.mu.Lock()
		t.extend(o.Prefill - 1)
		t.mu.Unlock()
	}

	return t
}

// Count returns count(n, m), the number of ways to place n remaining elements
// given m open groups, extending the table if needed.
//
// Errors:
//   - ErrZeroElements — n < 1.
//   - ErrZeroGroups    — m < 1.
//   - ErrLevelTooLarge — n > 1 and n+m-2 ≥ MaxLevel.
//   - ErrOverflow      — the value does not fit in a uint64.
//
// count(1, m) is 1 for every m and never touches the table.
//
// Complexity: O(1) for computed cells, O((n+m)²) the first time a level is reached.
func (t *Table) Count(n, m int) (uint64, error) {
	if n < 1 {
		return 0, ErrZeroElements
	}
	if m < 1 {
		return 0, ErrZeroGroups
	}
	if n == 1 {
		return 1, nil
	}
	// Compared as m ≥ MaxLevel-n+2 so that n+m cannot wrap.
	if m >= MaxLevel-n+2 {
		return 0, fmt.Errorf("%w: count(%d, %d)", ErrLevelTooLarge, n, m)
	}
	level := n + m - 2

	t.mu.RLock()
	if level < t.levels {
		v := t.cells[cellIndex(n, m)]
		t.mu.RUnlock()

		return checked(n, m, v)
	}
	t.mu.RUnlock()

	t.mu.Lock()
	t.extend(level) // another writer may have got here first; extend rechecks
	v := t.cells[cellIndex(n, m)]
	t.mu.Unlock()

	return checked(n, m, v)
}

// Bell returns B(n) = Count(n, 1).
func (t *Table) Bell(n int) (uint64, error) {
	return t.Count(n, 1)
}

// Levels reports how many levels are currently complete.
// Every pair with n+m-2 < Levels() is answered without extension.
func (t *Table) Levels() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.levels
}

// Count returns count(n, m) from the Default table.
func Count(n, m int) (uint64, error) {
	return Default.Count(n, m)
}

// Bell returns the n-th Bell number from the Default table.
func Bell(n int) (uint64, error) {
	return Default.Count(n, 1)
}

// extend fills every missing level up to and including top.
// Caller must hold the write lock.
func (t *Table) extend(top int) {
	if top < t.levels {
		return
	}
	tracer().Debugf("bell: extending table from %d to %d levels", t.levels, top+1)

	need := levelOffset(top + 1)
	if cap(t.cells) < need {
		grown := make([]uint64, len(t.cells), need)
		copy(grown, t.cells)
		t.cells = grown
	}
	for level := t.levels; level <= top; level++ {
		base := len(t.cells)
		t.cells = t.cells[:base+level+1]
		// n == 1: a single element has exactly one placement.
		t.cells[base] = 1
		for n := 2; n <= level+1; n++ {
			m := level + 2 - n
			stay := t.cells[cellIndex(n-1, m)] // joins one of m groups
			open := t.cells[base+n-2]          // (n-1, m+1): opens group m+1
			t.cells[base+n-1] = addSat(mulSat(uint64(m), stay), open)
		}
	}
	t.levels = top + 1
}

// levelOffset is the index of the first cell of level ℓ.
func levelOffset(level int) int {
	return level * (level + 1) / 2
}

// cellIndex maps (n, m) with n, m ≥ 1 onto the flat cell slice.
func cellIndex(n, m int) int {
	return levelOffset(n+m-2) + n - 1
}

func checked(n, m int, v uint64) (uint64, error) {
	if v == saturated {
		return 0, fmt.Errorf("%w: count(%d, %d)", ErrOverflow, n, m)
	}

	return v, nil
}

func mulSat(a, b uint64) uint64 {
	if a == saturated || b == saturated {
		return saturated
	}
	hi, lo := bits.Mul64(a, b)
	if hi != 0 || lo == saturated {
		return saturated
	}

	return lo
}

func addSat(a, b uint64) uint64 {
	if a == saturated || b == saturated {
		return saturated
	}
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum == saturated {
		return saturated
	}

	return sum
}
