// Package unionfind provides a generic disjoint-set (union-find) structure
// whose groups carry mergeable metadata.
//
// Every key starts in its own group. Union joins two groups and combines
// their metadata with a caller-supplied merge function, so per-group data
// (sizes, sums, labels) follows the groups as they grow.
//
//	uf := unionfind.New[string, int](func(a, b int) int { return a + b })
//	uf.Add("a", 1)
//	uf.Add("b", 2)
//	uf.Union("a", "b")
//	w, _ := uf.Metadata("b") // 3
//
// Find uses path halving and Union attaches the smaller tree below the
// larger one, so a sequence of m operations on n keys costs O(m·α(n)).
// A UnionFind is not safe for concurrent use.
package unionfind

import (
	"errors"
	"iter"
)

// ErrUnknownKey is returned when an operation names a key that was never added.
var ErrUnknownKey = errors.New("unionfind: unknown key")

// entry is the per-key node. size and meta are meaningful on roots only.
type entry[K comparable, M any] struct {
	parent K
	size   int
	meta   M
}

// UnionFind is a disjoint-set forest over keys of type K with group
// metadata of type M.
type UnionFind[K comparable, M any] struct {
	entries map[K]*entry[K, M]
	merge   func(a, b M) M
	groups  int
}

// New returns an empty structure. merge combines the metadata of two groups
// on Union; a nil merge keeps the metadata of the first argument's group.
func New[K comparable, M any](merge func(a, b M) M) *UnionFind[K, M] {
	return &UnionFind[K, M]{
		entries: make(map[K]*entry[K, M]),
		merge:   merge,
	}
}

// FromKeys returns a structure with one singleton group per key and no metadata.
func FromKeys[K comparable](keys iter.Seq[K]) *UnionFind[K, struct{}] {
	uf := New[K, struct{}](nil)
	for k := range keys {
		uf.Add(k, struct{}{})
	}

	return uf
}

// FromInitializers returns a structure with one singleton group per
// (key, metadata) pair.
func FromInitializers[K comparable, M any](merge func(a, b M) M, inits iter.Seq2[K, M]) *UnionFind[K, M] {
	uf := New[K, M](merge)
	for k, m := range inits {
		uf.Add(k, m)
	}

	return uf
}

// Add inserts key as a new singleton group. It reports false, and changes
// nothing, if key is already present.
func (u *UnionFind[K, M]) Add(key K, meta M) bool {
	if _, ok := u.entries[key]; ok {
		return false
	}
	u.entries[key] = &entry[K, M]{parent: key, size: 1, meta: meta}
	u.groups++

	return true
}

// Union joins the groups of a and b and returns the root of the combined
// group. The new metadata is merge(meta(a), meta(b)). Joining a group with
// itself is a no-op.
func (u *UnionFind[K, M]) Union(a, b K) (K, error) {
	ra, err := u.Find(a)
	if err != nil {
		return ra, err
	}
	rb, err := u.Find(b)
	if err != nil {
		return rb, err
	}
	if ra == rb {
		return ra, nil
	}
	ea, eb := u.entries[ra], u.entries[rb]
	meta := ea.meta
	if u.merge != nil {
		meta = u.merge(ea.meta, eb.meta)
	}
	// Attach the smaller tree below the larger; ties keep a's root.
	root, child := ea, eb
	rootKey := ra
	if eb.size > ea.size {
		root, child, rootKey = eb, ea, rb
	}
	child.parent = rootKey
	root.size += child.size
	root.meta = meta
	var zero M
	child.meta = zero
	u.groups--

	return rootKey, nil
}

// Find returns the root of key's group, compressing the path by halving.
func (u *UnionFind[K, M]) Find(key K) (K, error) {
	e, ok := u.entries[key]
	if !ok {
		return key, ErrUnknownKey
	}
	for e.parent != key {
		p := u.entries[e.parent]
		e.parent = p.parent // skip to the grandparent
		key = e.parent
		e = u.entries[key]
	}

	return key, nil
}

// Root returns the root of key's group without modifying the forest.
func (u *UnionFind[K, M]) Root(key K) (K, error) {
	e, ok := u.entries[key]
	if !ok {
		return key, ErrUnknownKey
	}
	for e.parent != key {
		key = e.parent
		e = u.entries[key]
	}

	return key, nil
}

// Same reports whether a and b are in the same group.
func (u *UnionFind[K, M]) Same(a, b K) (bool, error) {
	ra, err := u.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := u.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Size returns the number of keys in key's group.
func (u *UnionFind[K, M]) Size(key K) (int, error) {
	r, err := u.Root(key)
	if err != nil {
		return 0, err
	}

	return u.entries[r].size, nil
}

// Metadata returns the metadata of key's group.
func (u *UnionFind[K, M]) Metadata(key K) (M, error) {
	r, err := u.Root(key)
	if err != nil {
		var zero M
		return zero, err
	}

	return u.entries[r].meta, nil
}

// SetMetadata replaces the metadata of key's group.
func (u *UnionFind[K, M]) SetMetadata(key K, meta M) error {
	r, err := u.Root(key)
	if err != nil {
		return err
	}
	u.entries[r].meta = meta

	return nil
}

// Groups returns the number of disjoint groups.
func (u *UnionFind[K, M]) Groups() int {
	return u.groups
}

// Len returns the number of keys.
func (u *UnionFind[K, M]) Len() int {
	return len(u.entries)
}

// Keys returns every key, in no particular order.
func (u *UnionFind[K, M]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.entries {
			if !yield(k) {
				return
			}
		}
	}
}

// Roots returns one representative key per group, in no particular order.
func (u *UnionFind[K, M]) Roots() []K {
	roots := make([]K, 0, u.groups)
	for k, e := range u.entries {
		if e.parent == k {
			roots = append(roots, k)
		}
	}

	return roots
}
