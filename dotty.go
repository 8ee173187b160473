package ordset

import (
	"fmt"
	"io"
	"strings"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes).
//
// Internal nodes show their separator keys, leaves their key runs; edges
// follow the child slots.
func Set2Dot[K any](set *Set[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nodes := 0
	set.tree.WalkNodes(func(id, parent, depth int, leaf bool, keys []K) bool {
		nodes++
		label := dotLabel(keys)
		if leaf {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",shape=box,style=filled,fillcolor=grey92];\n", id, label)
		} else {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",shape=ellipse];\n", id, label)
		}
		if parent >= 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", parent, id)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
	T().Debugf("set DOT: %d nodes", nodes)
}

func dotLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%v", key)
	}
	label := strings.Join(parts, " | ")
	label = strings.ReplaceAll(label, `"`, `\"`)
	if label == "" {
		label = "∅"
	}
	return label
}
