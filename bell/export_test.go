package bell

// Test bridge: exposes the raw cell slice to bell_test without widening the
// production API.

// CellsSnapshot returns a copy of every computed cell.
func (t *Table) CellsSnapshot() []uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]uint64, len(t.cells))
	copy(out, t.cells)

	return out
}

// CellIndex exposes the triangular addressing.
func CellIndex(n, m int) int {
	return cellIndex(n, m)
}
