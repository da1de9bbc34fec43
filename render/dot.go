// Package render: DOT text assembly.
package render

import (
	"bytes"
	"fmt"

	"github.com/routegrid/routegrid/core"
)

// Options configures DOT generation.
type Options struct {
	// Title is drawn as the graph label under the drawing.
	Title string

	// ShowWeights labels each edge with its distance.
	ShowWeights bool

	// Highlight is an ordered node sequence (typically a shortest-path
	// result) whose nodes and edges are emphasized.
	Highlight []string
}

// ToDOT converts g to undirected Graphviz DOT. Output is deterministic:
// nodes and edges follow the graph's sorted enumeration order.
func ToDOT(g *core.Graph, opts Options) string {
	highlightNode := make(map[string]bool, len(opts.Highlight))
	for _, n := range opts.Highlight {
		highlightNode[n] = true
	}
	highlightEdge := make(map[[2]string]bool, len(opts.Highlight))
	for i := 1; i < len(opts.Highlight); i++ {
		a, b := opts.Highlight[i-1], opts.Highlight[i]
		if a > b {
			a, b = b, a // edges are stored From < To
		}
		highlightEdge[[2]string{a, b}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		if highlightNode[n] {
			fmt.Fprintf(&buf, "  %q [fillcolor=\"#d62728\", fontcolor=white];\n", n)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", n)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := ""
		if opts.ShowWeights {
			attrs = fmt.Sprintf("label=\"%d\", fontsize=8", e.Weight)
		}
		if highlightEdge[[2]string{e.From, e.To}] {
			if attrs != "" {
				attrs += ", "
			}
			attrs += "color=\"#d62728\", penwidth=3.0"
		}
		if attrs != "" {
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, attrs)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}
