package intpart

import (
	"iter"
	"slices"
)

// Partitions returns a lazy sequence of every partition of n into exactly k
// positive parts, each in non-increasing order and each exactly once.
//
// Algorithm:
//  1. Choose the next (largest remaining) part p in 1..min(bound, n'),
//     where bound is the previously chosen part (n at the root).
//  2. Recurse on (n'-p, k'-1, bound=p).
//  3. A branch (n', k', bound) is terminal with exactly one completion when
//     n'=0 and k'=0; it continues only if k'>0, n'≥k' (every part is ≥1)
//     and k'·bound ≥ n' (even maximal parts can still reach n').
//
// Edge cases:
//   - (0, 0) yields a single empty partition.
//   - any other combination involving zero, negative input or k > n yields nothing.
//
// Every yielded slice is freshly allocated and may be retained.
func Partitions(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < 0 {
			return
		}
		descend(n, k, n, make([]int, 0, k), yield)
	}
}

// descend explores branch (n, k, bound) below prefix. It reports false once
// the consumer has stopped.
func descend(n, k, bound int, prefix []int, yield func([]int) bool) bool {
	if n == 0 && k == 0 {
		return yield(slices.Clone(prefix))
	}
	if k <= 0 || n < k || k*bound < n {
		return true
	}
	for part := 1; part <= min(bound, n); part++ {
		if !descend(n-part, k-1, part, append(prefix, part), yield) {
			return false
		}
	}

	return true
}

// Count returns the number of partitions of n into exactly k positive parts,
// using p(n, k) = p(n-1, k-1) + p(n-k, k) over an (n+1)×(k+1) table.
// Negative inputs count zero.
//
// Complexity: O(n·k) time, O(n·k) memory.
func Count(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	p := make([][]int, n+1)
	for i := range p {
		p[i] = make([]int, k+1)
	}
	p[0][0] = 1
	for i := 1; i <= n; i++ {
		for j := 1; j <= min(i, k); j++ {
			p[i][j] = p[i-1][j-1] + p[i-j][j]
		}
	}

	return p[n][k]
}
