// Package lvpart is your in-memory toolkit for enumerating partitions —
// of integers into a fixed number of parts, and of sequences into groups —
// each member exactly once, in a well-defined order.
//
// 🚀 What is in the box?
//
//	• bell/        — memoized count(n, m) table and Bell numbers (triangular layout)
//	• intpart/     — partitions of n into k parts: recursive pruned search and
//	                 an in-place successor generator with a lending contract
//	• setpart/     — set partitions via restricted-growth strings, count known up front
//	• combos/      — k-combinations, all and proper-subset combinations
//	• unionfind/   — disjoint sets with mergeable per-group metadata
//	• primefactor/ — integers as prime factorizations
//
// ✨ Why lvpart?
//
//   - Lazy: generators are iter.Seq values or explicit Next loops; nothing is
//     materialized unless you collect it
//   - Predictable: sentinel errors for precondition violations, exhaustion is
//     never an error
//   - Allocation-aware: intpart.Successor reuses one buffer for a whole run
//
// Quick example:
//
//	for p := range intpart.Partitions(4, 2) {
//	    fmt.Println(p) // [2 2] [3 1]
//	}
//
//	go get github.com/katalvlaran/lvpart
package lvpart
