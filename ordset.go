package ordset

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordset/bptree"
)

// Set is an ordered set of keys backed by a B+ tree.
//
// The zero Set is not usable; create sets with New or NewWith. Methods on
// Set are not safe for concurrent mutation.
type Set[K any] struct {
	tree *bptree.Tree[K]
}

// Iterator is a forward iterator over set keys in ascending order.
// Iterators compare with ==; the zero Iterator equals End().
type Iterator[K any] = bptree.Cursor[K]

// New creates a set over a naturally ordered key type, optionally filled
// with keys. The tree uses the default fanout.
func New[K cmp.Ordered](keys ...K) *Set[K] {
	set, err := NewWith(bptree.Config[K]{Less: cmp.Less[K]}, keys...)
	if err != nil {
		panic(err) // cannot happen: ordering is set, fanout defaulted
	}
	return set
}

// Collect creates a set over a naturally ordered key type from a key
// sequence.
func Collect[K cmp.Ordered](seq iter.Seq[K]) *Set[K] {
	set := New[K]()
	for key := range seq {
		set.Insert(key)
	}
	return set
}

// NewWith creates a set from an explicit tree configuration, optionally
// filled with keys.
func NewWith[K any](cfg bptree.Config[K], keys ...K) (*Set[K], error) {
	tree, err := bptree.New(cfg)
	if err != nil {
		return nil, err
	}
	set := &Set[K]{tree: tree}
	set.InsertAll(keys...)
	return set, nil
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	return s.tree.Len()
}

// Empty reports whether the set has no keys.
func (s *Set[K]) Empty() bool {
	return s.tree.IsEmpty()
}

// Insert adds key to the set. It returns an iterator at the key and true
// if the key was newly inserted, or an iterator at the already present
// equal key and false.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	return s.tree.Insert(key)
}

// InsertAll adds all keys to the set, skipping keys already present.
func (s *Set[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		s.tree.Insert(key)
	}
}

// Erase removes key from the set, returning the number of keys removed
// (0 or 1).
func (s *Set[K]) Erase(key K) int {
	return s.tree.Erase(key)
}

// Count returns 1 if key is in the set, 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.tree.Contains(key) {
		return 1
	}
	return 0
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Find returns an iterator at key, or End() if the key is absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	return s.tree.Find(key)
}

// Begin returns an iterator at the smallest key; for an empty set it
// equals End().
func (s *Set[K]) Begin() Iterator[K] {
	return s.tree.Begin()
}

// End returns the past-the-end iterator.
func (s *Set[K]) End() Iterator[K] {
	return s.tree.End()
}

// All returns an iterator over keys in ascending order, for use with
// range-over-func loops.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Assign replaces the set contents with the given keys.
func (s *Set[K]) Assign(keys ...K) {
	s.tree.Clear()
	s.InsertAll(keys...)
}

// CopyFrom replaces the set contents with a copy of another set's keys,
// including the other set's ordering and fanout.
func (s *Set[K]) CopyFrom(other *Set[K]) {
	s.tree.Swap(other.tree.Clone())
}

// Clone returns a deep copy of the set. Mutating either set afterwards
// leaves the other untouched.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Equal reports whether both sets hold element-wise equal key sequences.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if other == nil {
		return false
	}
	return s.tree.Equal(other.tree)
}

// Swap exchanges the contents of both sets in constant time.
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}

// String renders the set compactly as "{k1 k2 …}", for debugging and
// logging.
func (s *Set[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.tree.ForEachKey(func(key K) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", key)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
