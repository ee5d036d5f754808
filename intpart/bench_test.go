package intpart_test

import (
	"testing"

	"github.com/katalvlaran/lvpart/intpart"
)

// BenchmarkPartitions_Recursive drains the recursive generator for p(60,8).
func BenchmarkPartitions_Recursive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for range intpart.Partitions(60, 8) {
		}
	}
}

// BenchmarkPartitions_Successor drains the in-place generator for p(60,8).
func BenchmarkPartitions_Successor(b *testing.B) {
	s, err := intpart.NewSuccessor(60, 8)
	if err != nil {
		b.Fatalf("NewSuccessor failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		s.Walk(func([]int) bool { return true })
	}
}
