package bptree

import "testing"

func TestCursorWalksLeafChain(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 1; k <= 20; k++ {
		tree.Insert(k)
	}
	want := 1
	for cur := tree.Begin(); !cur.Done(); cur = cur.Next() {
		if cur.Key() != want {
			t.Fatalf("cursor yielded %d, want %d", cur.Key(), want)
		}
		want++
	}
	if want != 21 {
		t.Fatalf("cursor stopped after %d keys, want 20", want-1)
	}
}

func TestCursorEndSentinel(t *testing.T) {
	tree := makeIntTree(t, 3)
	end := tree.End()
	if !end.Done() {
		t.Fatalf("End() must be the sentinel")
	}
	if end.Next() != end {
		t.Fatalf("advancing the sentinel must yield the sentinel")
	}
	if tree.Begin() != end {
		t.Fatalf("Begin() of an empty tree must equal End()")
	}
}

func TestCursorEqualityAtBegin(t *testing.T) {
	tree := makeIntTree(t, 3)
	for _, k := range []int{3, 1, 2} {
		tree.Insert(k)
	}
	if tree.Begin() != tree.Find(1) {
		t.Fatalf("Begin() must equal Find(smallest)")
	}
	if tree.Begin() == tree.Find(2) {
		t.Fatalf("cursors at different keys must differ")
	}
}

func TestCursorCrossesLeafBoundary(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 1; k <= 7; k++ {
		tree.Insert(k) // splits into [1 2 3] and [4 5 6 7]
	}
	cur := tree.Find(3)
	cur = cur.Next()
	if cur.Done() || cur.Key() != 4 {
		t.Fatalf("cursor did not follow the leaf chain across the boundary")
	}
	cur = tree.Find(7).Next()
	if !cur.Done() {
		t.Fatalf("cursor past the last key must be the sentinel")
	}
}
