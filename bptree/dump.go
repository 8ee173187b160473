package bptree

import (
	"fmt"
	"io"
	"strings"
)

// WalkNodes visits every node in depth-first preorder. The callback gets a
// preorder id, the parent's id (-1 for the root), the depth, the node kind
// and the node's keys. The key slice is the node's backing storage and
// must not be retained or modified. Returning false stops the walk.
func (t *Tree[K]) WalkNodes(fn func(id, parent, depth int, leaf bool, keys []K) bool) {
	if fn == nil {
		return
	}
	next := 0
	t.walkNode(t.root, -1, 0, &next, fn)
}

func (t *Tree[K]) walkNode(n treeNode[K], parent, depth int, next *int, fn func(id, parent, depth int, leaf bool, keys []K) bool) bool {
	id := *next
	*next = id + 1
	switch n := n.(type) {
	case *leafNode[K]:
		return fn(id, parent, depth, true, n.keys)
	case *innerNode[K]:
		if !fn(id, parent, depth, false, n.keys) {
			return false
		}
		for _, child := range n.children {
			if !t.walkNode(child, id, depth+1, next, fn) {
				return false
			}
		}
		return true
	default:
		panic("unknown tree node type")
	}
}

// Dump writes an indented outline of the tree to w, one node per line,
// plus the leaf chain. For debugging only; the format is not stable.
func (t *Tree[K]) Dump(w io.Writer) {
	fmt.Fprintf(w, "Size: %d\n", t.size)
	fmt.Fprint(w, "Root ")
	first := true
	t.WalkNodes(func(id, parent, depth int, leaf bool, keys []K) bool {
		if !first {
			fmt.Fprint(w, strings.Repeat("    ", depth))
		}
		first = false
		if leaf {
			fmt.Fprintf(w, "Leaf: %s\n", keyList(keys))
		} else {
			fmt.Fprintf(w, "Internal%s\n", keyList(keys))
		}
		return true
	})
	fmt.Fprint(w, "Chain:")
	for leaf := t.leftLeaf; leaf != nil; leaf = leaf.right {
		fmt.Fprintf(w, " %s", keyList(leaf.keys))
	}
	fmt.Fprintln(w)
}

func keyList[K any](keys []K) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	sb.WriteByte(']')
	return sb.String()
}
