// Package intpart enumerates the partitions of an integer n into exactly k
// positive parts.
//
// 🚀 Two generators, one result set:
//
//	Partitions(n, k) is a depth-first search that picks the largest
//	remaining part first, bounded by the previous pick, and prunes any
//	branch that can no longer reach n. Each partition comes out as an
//	independent, non-increasing slice.
//
//	Successor is an in-place generator: it keeps one buffer of k parts
//	(non-decreasing, always summing to n) and rewrites it to the next
//	partition on every advance. It allocates once per enumeration.
//
// ✨ Lending contract:
//
//	Successor.Next, Successor.Walk and Successor.All hand out the
//	generator's own buffer. A view is valid only until the next advance;
//	copy it (slices.Clone, Collect) to keep it. Version reports how many
//	advances happened, so a caller holding a view can tell whether it is
//	stale.
//
// ⚙️ Usage:
//
//	for p := range intpart.Partitions(7, 3) {
//	    fmt.Println(p) // [3 2 2] [3 3 1] [4 2 1] [5 1 1]
//	}
//
//	s, err := intpart.NewSuccessor(7, 3)
//	for v, ok := s.Next(); ok; v, ok = s.Next() {
//	    fmt.Println(v) // [1 1 5] [1 2 4] [1 3 3] [2 2 3]
//	}
//
// Complexity:
//   - Partitions: O(k) work per yielded partition plus pruned branches.
//   - Successor:  O(k) per advance, O(k) memory for the whole enumeration.
package intpart

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvpart.intpart'
func tracer() tracing.Trace {
	return tracing.Select("lvpart.intpart")
}
