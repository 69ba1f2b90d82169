package ordmap

import (
	"fmt"
	"io"
)

// Map2Dot outputs the internal structure of an ordered map in Graphviz DOT
// format (for debugging purposes). Sequence slots are drawn as a chain in
// position order, tombstones grayed out; index entries point at their slot.
func Map2Dot[K comparable, V any](m OrdMap[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	m.seq.Each(func(pos int, s slot[K, V]) bool {
		if s.live {
			label := fmt.Sprintf("@%d\\n%v = %v", pos, s.key, s.val)
			nodelist += fmt.Sprintf("\"s%d\" [label=\"%s\" shape=box];\n", pos, label)
		} else {
			nodelist += fmt.Sprintf("\"s%d\" [label=\"@%d\" shape=box,style=filled,color=gray];\n", pos, pos)
		}
		if pos > 0 {
			edgelist += fmt.Sprintf("\"s%d\" -> \"s%d\";\n", pos-1, pos)
		}
		return true
	})
	m.index.Each(func(k K, e indexEntry[V]) bool {
		nodelist += fmt.Sprintf("\"k%v\" [label=\"%v\" shape=plaintext];\n", k, k)
		edgelist += fmt.Sprintf("\"k%v\" -> \"s%d\" [style=dashed];\n", k, e.pos)
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
