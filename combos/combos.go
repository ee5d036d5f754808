// Package combos enumerates combinations of a sequence: all of one size, all
// non-empty ones, or all proper non-empty subsets.
//
// The k-combination step is delegated to gonum's combin.CombinationGenerator,
// which produces index sets in lexicographic order; this package maps them
// back onto the caller's items.
//
//	for c := range combos.All([]string{"x", "y", "z"}) {
//	    fmt.Println(c) // [x] [y] [z] [x y] [x z] [y z] [x y z]
//	}
package combos

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// OfSize returns every combination of exactly k items, preserving the input
// order inside each combination. k outside 0..len(items) yields nothing;
// k == 0 yields one empty combination.
//
// Each yielded slice is freshly allocated.
func OfSize[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if k < 0 || k > n {
			return
		}
		if k == 0 {
			yield([]T{})

			return
		}
		gen := combin.NewCombinationGenerator(n, k)
		idx := make([]int, k)
		for gen.Next() {
			gen.Combination(idx)
			c := make([]T, k)
			for i, j := range idx {
				c[i] = items[j]
			}
			if !yield(c) {
				return
			}
		}
	}
}

// All returns every non-empty combination, by increasing size.
func All[T any](items []T) iter.Seq[[]T] {
	return sizes(items, 1, len(items))
}

// ProperSubsets returns every non-empty combination that leaves at least one
// item out, by increasing size.
func ProperSubsets[T any](items []T) iter.Seq[[]T] {
	return sizes(items, 1, len(items)-1)
}

// Count returns how many combinations All yields: 2^n - 1, computed as a sum
// of binomial coefficients.
func Count(n int) int {
	total := 0
	for k := 1; k <= n; k++ {
		total += combin.Binomial(n, k)
	}

	return total
}

// sizes concatenates OfSize for every k in lo..hi.
func sizes[T any](items []T, lo, hi int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for k := lo; k <= hi; k++ {
			for c := range OfSize(items, k) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
