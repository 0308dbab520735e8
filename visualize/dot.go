// Package visualize renders a carousel as Graphviz DOT.
package visualize

import (
	"bytes"
	"fmt"

	"github.com/comalice/carousel"
)

// DOT renders the slide ring. Each slide links to its successor ("next")
// and predecessor ("prev"); the active slide is filled and the graph label
// carries the controller phase. labels may be shorter than st.Total;
// missing labels fall back to the 1-based position.
func DOT(name string, st carousel.State, labels []string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	fmt.Fprintf(&buf, "  label=%q;\n", graphLabel(st))

	for i := 0; i < st.Total; i++ {
		style := "rounded"
		if i == st.ActiveIndex {
			style = "rounded,filled"
		}
		fmt.Fprintf(&buf, "  \"s%d\" [label=%q, style=%q];\n", i, slideLabel(i, labels), style)
	}

	if st.Total > 1 {
		for i := 0; i < st.Total; i++ {
			fmt.Fprintf(&buf, "  \"s%d\" -> \"s%d\" [label=\"next\"];\n", i, carousel.Wrap(i, 1, st.Total))
		}
		// Two slides share one edge pair; skip the duplicate prev edges.
		if st.Total > 2 {
			for i := 0; i < st.Total; i++ {
				fmt.Fprintf(&buf, "  \"s%d\" -> \"s%d\" [label=\"prev\", style=dashed];\n", i, carousel.Wrap(i, -1, st.Total))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func slideLabel(i int, labels []string) string {
	if i < len(labels) && labels[i] != "" {
		return fmt.Sprintf("%02d %s", i+1, labels[i])
	}
	return fmt.Sprintf("%02d", i+1)
}

func graphLabel(st carousel.State) string {
	switch {
	case st.Inert():
		return "inert"
	case st.Paused:
		return fmt.Sprintf("%s (paused)", st.Phase)
	default:
		return st.Phase.String()
	}
}
