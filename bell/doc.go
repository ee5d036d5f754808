// Package bell counts set-partition completions with a memoized, append-only
// table addressed by a triangular index.
//
// 🚀 What is counted?
//
//	count(n, m) is the number of ways to finish assigning n remaining
//	elements when m groups are already open and every element may either
//	join one of the open groups or open a new one:
//
//	  count(1, m) = 1
//	  count(n, m) = m·count(n-1, m) + count(n-1, m+1)
//
//	With no groups open yet, the first element always opens one, so the
//	Bell number B(n), the number of partitions of an n-element set, is
//	count(n, 1).
//
// ✨ Key features:
//   - flat storage: all pairs sharing a level ℓ = n+m-2 are contiguous
//   - monotonic growth: a larger request fills only the missing levels
//   - concurrent readers, single writer (sync.RWMutex)
//   - overflow is reported as ErrOverflow, never as a wrapped-around number
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpart/bell"
//
//	b4, err := bell.Bell(4)          // 15, shared Default table
//	t := bell.NewTable(bell.WithPrefill(10))
//	c, err := t.Count(3, 2)          // 10
//
// Performance:
//
//   - Extension to level L: O(L²) time and memory, paid once.
//   - Lookup of a computed cell: O(1) under a read lock.
package bell

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvpart.bell'
func tracer() tracing.Trace {
	return tracing.Select("lvpart.bell")
}
