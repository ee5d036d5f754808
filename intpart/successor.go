package intpart

import (
	"iter"
	"slices"
)

// state of a Successor between advances.
type state uint8

const (
	statePrimed state = iota // buffer holds the first partition, not yet handed out
	stateActive              // buffer holds the partition last handed out
	stateDone                // enumeration finished
)

// Successor enumerates the partitions of n into exactly k parts by rewriting
// a single k-slot buffer in place.
//
// The buffer is kept non-decreasing and always sums to n. Partitions appear
// in reverse colexicographic order: compared from the largest part down, each
// partition is smaller than the one before it. The largest part therefore
// never increases, running from [1 … 1 n-k+1] to the most balanced partition,
// e.g. (9, 3) gives [1 1 7] [1 2 6] [1 3 5] [2 2 5] [1 4 4] [2 3 4] [3 3 3].
// The generator is single-owner: it must not be advanced from more than one
// goroutine without external locking.
type Successor struct {
	n, k    int
	buf     []int
	state   state
	version uint64
}

// NewSuccessor returns a generator primed one step before the first
// partition of n into k parts.
//
// Errors:
//   - ErrZeroParts    — k < 1.
//   - ErrZeroTotal    — n < 1.
//   - ErrTooManyParts — k > n.
//
// Use Partitions when k > n or zero inputs are legitimate (they simply
// produce nothing there).
func NewSuccessor(n, k int) (*Successor, error) {
	switch {
	case k < 1:
		return nil, ErrZeroParts
	case n < 1:
		return nil, ErrZeroTotal
	case k > n:
		return nil, ErrTooManyParts
	}
	s := &Successor{n: n, k: k, buf: make([]int, k)}
	s.Reset()

	return s, nil
}

// Reset re-primes the generator so the next advance yields the first
// partition again. The buffer is reused.
func (s *Successor) Reset() {
	for i := 0; i < s.k-1; i++ {
		s.buf[i] = 1
	}
	s.buf[s.k-1] = s.n - s.k + 1
	s.state = statePrimed
}

// Next advances to the next partition and returns a view of the internal
// buffer. The view is valid only until the following call to Next, Walk,
// All or Reset. ok is false once the enumeration is exhausted.
func (s *Successor) Next() (view []int, ok bool) {
	switch s.state {
	case stateDone:
		return nil, false
	case statePrimed:
		s.state = stateActive
	default:
		if !s.advance() {
			s.state = stateDone
			tracer().Debugf("intpart: successor(%d, %d) exhausted after %d partitions", s.n, s.k, s.version)

			return nil, false
		}
	}
	s.version++

	return s.buf, true
}

// Version returns the number of partitions handed out so far. A view taken
// when Version returned v is current only while Version still returns v.
func (s *Successor) Version() uint64 {
	return s.version
}

// Walk calls fn with a view of every remaining partition until fn returns
// false or the enumeration ends. The view must not be retained past fn.
func (s *Successor) Walk(fn func(view []int) bool) {
	for view, ok := s.Next(); ok; view, ok = s.Next() {
		if !fn(view) {
			return
		}
	}
}

// All returns a lending sequence over the remaining partitions. Each yielded
// slice is the generator's buffer and is overwritten by the next iteration.
func (s *Successor) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		s.Walk(yield)
	}
}

// advance rewrites buf into its successor and reports whether one exists.
//
// Steps, scanning from the small end:
//  1. Slots 0..i-1 already passed over hold need units. Slot i is the pivot
//     if, after decrementing it to p-1, those i slots can absorb need+1
//     units with no part above p-1: (p-1)·i ≥ need+1. Pivots equal to 1
//     never qualify.
//  2. Decrement the pivot.
//  3. Refill slots i-1 down to 0 greedily: each takes the smaller of p-1 and
//     the most it can take while leaving 1 for every slot still below it.
//     This keeps the buffer non-decreasing and the sum at n.
//  4. If no slot qualifies, the current partition is the last one.
func (s *Successor) advance() bool {
	need := 0
	for i := 0; i < s.k; i++ {
		pivot := s.buf[i] - 1
		if pivot*i < need+1 {
			need += s.buf[i]
			continue
		}
		s.buf[i] = pivot
		rest := need + 1
		for j := i - 1; j >= 0; j-- {
			v := min(pivot, rest-j)
			s.buf[j] = v
			rest -= v
		}

		return true
	}

	return false
}

// Collect drains seq and returns an independent copy of every element. It is
// the safe way to materialize a lending sequence such as Successor.All.
func Collect(seq iter.Seq[[]int]) [][]int {
	var out [][]int
	for v := range seq {
		out = append(out, slices.Clone(v))
	}

	return out
}
