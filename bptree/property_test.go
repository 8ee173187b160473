package bptree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./bptree -run TestTreeRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./bptree -run '^$' -fuzz FuzzTreeRandomizedProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./bptree -run 'FuzzTreeRandomizedProperty/<id>'

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model []int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("Len()=%d, model holds %d keys", tree.Len(), len(model))
	}
	got := collectKeys(tree)
	for i := range model {
		if got[i] != model[i] {
			t.Fatalf("key mismatch at %d: got=%v want=%v", i, got, model)
		}
	}
}

// modelInsert keeps the model slice sorted and duplicate-free, reporting
// whether the key was new.
func modelInsert(model []int, key int) ([]int, bool) {
	pos := sort.SearchInts(model, key)
	if pos < len(model) && model[pos] == key {
		return model, false
	}
	model = append(model, 0)
	copy(model[pos+1:], model[pos:])
	model[pos] = key
	return model, true
}

func modelErase(model []int, key int) ([]int, bool) {
	pos := sort.SearchInts(model, key)
	if pos == len(model) || model[pos] != key {
		return model, false
	}
	return append(model[:pos], model[pos+1:]...), true
}

func runRandomSetSequence(t *testing.T, fanout int, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree, err := New(Config[int]{Fanout: fanout, Less: intLess})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := make([]int, 0, 64)

	for i := 0; i < steps; i++ {
		key := r.Intn(200)
		switch r.Intn(4) {
		case 0, 1: // bias towards growth so the tree gains height
			cur, inserted := tree.Insert(key)
			var wasNew bool
			model, wasNew = modelInsert(model, key)
			if inserted != wasNew {
				t.Fatalf("Insert(%d) reported inserted=%v, model says %v", key, inserted, wasNew)
			}
			if cur.Done() || cur.Key() != key {
				t.Fatalf("Insert(%d) returned a cursor at the wrong position", key)
			}
		case 2:
			n := tree.Erase(key)
			var existed bool
			model, existed = modelErase(model, key)
			if (n == 1) != existed {
				t.Fatalf("Erase(%d) = %d, model says existed=%v", key, n, existed)
			}
		case 3:
			want := sort.SearchInts(model, key) < len(model) && model[sort.SearchInts(model, key)] == key
			if tree.Contains(key) != want {
				t.Fatalf("Contains(%d) = %v, model says %v", key, !want, want)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		for _, fanout := range []int{1, 2, 3} {
			name := "seed_" + strconv.FormatUint(seed, 10) + "_fanout_" + strconv.Itoa(fanout)
			t.Run(name, func(t *testing.T) {
				runRandomSetSequence(t, fanout, seed, 300)
			})
		}
	}
}

func FuzzTreeRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(1), uint8(32))
	f.Add(uint64(7), uint8(3), uint8(64))
	f.Add(uint64(42), uint8(2), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, fanout uint8, steps uint8) {
		runRandomSetSequence(t, int(fanout%5)+1, seed, int(steps%160)+1)
	})
}
