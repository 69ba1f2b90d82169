package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump prints the internal trie structure of a vector to w (for debugging
// purposes). On an interactive terminal, inner nodes, leaves and the tail
// buffer are colorized and lines are clipped to the terminal width.
func Dump[T any](v Vector[T], w io.Writer) {
	width := 80
	if term.IsTerminal(0) {
		if tw, _, err := term.GetSize(0); err == nil && tw > 0 {
			width = tw
		}
	}
	innerCol := color.New(color.FgCyan)
	leafCol := color.New(color.FgGreen)
	tailCol := color.New(color.FgYellow)
	fmt.Fprintf(w, "vector len=%d, trie=%d, tail=%d\n", v.count, v.tailOffset(), len(v.tail))
	if v.root != nil {
		dumpNode(v, v.root, v.shift, 0, width, innerCol, leafCol, w)
	}
	line := fmt.Sprintf("%stail ▪ %d item(s)", strings.Repeat("  ", 1), len(v.tail))
	fmt.Fprintln(w, tailCol.Sprint(clip(line, width)))
}

func dumpNode[T any](v Vector[T], n treeNode[T], level uint, depth, width int, innerCol, leafCol *color.Color, w io.Writer) {
	indent := strings.Repeat("  ", depth+1)
	if n.isLeaf() {
		leaf := n.(*leafNode[T])
		line := fmt.Sprintf("%sleaf ▪ %d item(s)", indent, len(leaf.items))
		fmt.Fprintln(w, leafCol.Sprint(clip(line, width)))
		return
	}
	inner := n.(*innerNode[T])
	slots := 0
	for _, child := range inner.children {
		if child != nil {
			slots++
		}
	}
	line := fmt.Sprintf("%snode @%d ▪ %d slot(s)", indent, level, slots)
	fmt.Fprintln(w, innerCol.Sprint(clip(line, width)))
	for _, child := range inner.children {
		if child == nil {
			break
		}
		dumpNode(v, child, level-nbits, depth+1, width, innerCol, leafCol, w)
	}
}

func clip(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
