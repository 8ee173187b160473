package bptree

import "iter"

// ForEachKey walks keys in ascending order along the leaf chain.
//
// Iteration stops early if the callback returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if fn == nil {
		return
	}
	for leaf := t.leftLeaf; leaf != nil; leaf = leaf.right {
		for _, key := range leaf.keys {
			if !fn(key) {
				return
			}
		}
	}
}

// All returns an iterator over keys in ascending order, for use with
// range-over-func loops.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEachKey(yield)
	}
}
