package ordset

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleDump writes a size line and an indented outline of the set's tree
// to w, one node per line; the leaf chain is not printed. When w is a
// terminal, node kinds are colorized and long key runs are clamped to the
// terminal width.
//
// This is a debugging aid; the output format is not stable.
func ConsoleDump[K any](set *Set[K], w io.Writer) {
	width := consoleWidth(w)
	innerStyle := color.New(color.FgBlue, color.Bold)
	leafStyle := color.New(color.FgGreen)
	if width == 0 {
		innerStyle.DisableColor()
		leafStyle.DisableColor()
	}
	T().Debugf("console dump of a set with %d keys", set.Size())
	fmt.Fprintf(w, "ordered set, size %d\n", set.Size())
	set.tree.WalkNodes(func(id, parent, depth int, leaf bool, keys []K) bool {
		indent := strings.Repeat("    ", depth)
		kind := innerStyle.Sprint("internal")
		if leaf {
			kind = leafStyle.Sprint("leaf")
		}
		run := keyRun(keys)
		if width > 0 {
			run = clamp(run, width-len(indent)-len("internal ")-1)
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, kind, run)
		return true
	})
}

// consoleWidth returns the terminal width of w, or 0 if w is not a
// terminal.
func consoleWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func keyRun[K any](keys []K) string {
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

func clamp(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
