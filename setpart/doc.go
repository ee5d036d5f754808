// Package setpart enumerates the set partitions of an ordered sequence: every
// way to split n items into non-empty, unlabeled groups.
//
// Each grouping is driven by a restricted-growth string a[0..n): a[i] is the
// group of item i, a[0] = 0, and a[i] ≤ 1 + max(a[0..i)), so groups are
// introduced left to right without gaps. The string is advanced like a
// mixed-radix counter read right to left; the first grouping is a single
// group holding everything, the last is all singletons.
//
// The number of groupings, the Bell number B(n), is taken from a bell.Table
// before the first advance, so Len is known up front.
//
//	g, err := setpart.New([]string{"a", "b", "c"})
//	fmt.Println(g.Len()) // 5
//	for grouping, ok := g.Next(); ok; grouping, ok = g.Next() {
//	    fmt.Println(grouping) // [[a b c]] [[a b] [c]] [[a c] [b]] [[a] [b c]] [[a] [b] [c]]
//	}
//
// Within a group, items keep their original relative order. Every grouping
// is materialized into fresh slices and may be retained.
package setpart

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvpart.setpart'
func tracer() tracing.Trace {
	return tracing.Select("lvpart.setpart")
}
