package diagram

import (
	"bytes"
	"fmt"
	"strings"
)

// Options tunes DOT generation without touching the definition.
type Options struct {
	// FontName replaces every fontname attribute (graph, nodes, edges and
	// clusters). Useful for Korean labels on hosts without AppleGothic.
	FontName string
}

// Defaults applied before any definition attributes.
var (
	defaultGraphAttrs = Attrs{
		"pad":       "2.0",
		"splines":   "ortho",
		"nodesep":   "0.60",
		"ranksep":   "0.75",
		"fontname":  "Sans-Serif",
		"fontsize":  "15",
		"fontcolor": "#2D3436",
	}
	defaultNodeAttrs = Attrs{
		"shape":    "box",
		"style":    "rounded,filled",
		"margin":   "0.2,0.1",
		"fontname": "Sans-Serif",
		"fontsize": "13",
	}
	defaultEdgeAttrs = Attrs{
		"color":     "#7B8894",
		"fontcolor": "#2D3436",
		"fontname":  "Sans-Serif",
		"fontsize":  "13",
	}
	defaultClusterAttrs = Attrs{
		"style":     "rounded,filled",
		"labeljust": "l",
		"pencolor":  "#AEB6BE",
		"fontname":  "Sans-Serif",
		"fontsize":  "12",
	}

	// clusterBackgrounds cycles by nesting depth.
	clusterBackgrounds = []string{"#E5F5FD", "#EBF3E7", "#ECE8F6", "#FDF7E3"}
)

// ToDOT converts d to a Graphviz DOT document. The output is a pure function
// of d and opts: attributes are sorted, clusters are numbered depth-first
// and edges keep their declaration order.
//
// Nodes must reference known categories; call [Diagram.Validate] first.
func (d *Diagram) ToDOT(opts Options) string {
	font := Attrs{}
	if opts.FontName != "" {
		font["fontname"] = opts.FontName
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", d.Name)

	graph := Merge(defaultGraphAttrs, Attrs{"label": d.Title, "rankdir": string(d.Direction)}, d.GraphAttrs, font)
	writeAttrLines(&buf, "  ", graph)
	fmt.Fprintf(&buf, "  node [%s];\n", fmtAttrs(Merge(defaultNodeAttrs, d.NodeAttrs, font)))
	fmt.Fprintf(&buf, "  edge [%s];\n", fmtAttrs(Merge(defaultEdgeAttrs, d.EdgeAttrs, font)))
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		writeNode(&buf, "  ", n)
	}

	w := clusterWriter{buf: &buf, shared: Merge(d.ClusterAttrs), font: font}
	for i := range d.Clusters {
		w.write(&d.Clusters[i], 0)
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		fmt.Fprintf(&buf, "  %q -> %q", e.From, e.To)
		if attrs := edgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, " [%s]", fmtAttrs(attrs))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

type clusterWriter struct {
	buf    *bytes.Buffer
	shared Attrs
	font   Attrs
	next   int
}

func (w *clusterWriter) write(c *Cluster, depth int) {
	indent := strings.Repeat("  ", depth+1)
	fmt.Fprintf(w.buf, "%ssubgraph cluster_%d {\n", indent, w.next)
	w.next++

	bg := Attrs{"bgcolor": clusterBackgrounds[depth%len(clusterBackgrounds)], "label": c.Label}
	writeAttrLines(w.buf, indent+"  ", Merge(defaultClusterAttrs, bg, w.shared, c.Attrs, w.font))

	for _, n := range c.Nodes {
		writeNode(w.buf, indent+"  ", n)
	}
	for i := range c.Clusters {
		w.write(&c.Clusters[i], depth+1)
	}
	fmt.Fprintf(w.buf, "%s}\n", indent)
}

func writeNode(buf *bytes.Buffer, indent string, n Node) {
	attrs := Attrs{"label": n.Label, "tooltip": n.Category}
	if c, ok := LookupCategory(n.Category); ok {
		attrs["shape"] = c.Shape
		attrs["fillcolor"] = c.FillColor
		attrs["fontcolor"] = c.FontColor
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, fmtAttrs(attrs))
}

func edgeAttrs(e Edge) Attrs {
	attrs := Attrs{}
	if e.Label != "" {
		attrs["label"] = e.Label
	}
	if e.Color != "" {
		attrs["color"] = e.Color
	}
	if e.Style != "" {
		attrs["style"] = string(e.Style)
	}
	if e.Undirected {
		attrs["dir"] = "none"
	}
	return attrs
}

func writeAttrLines(buf *bytes.Buffer, indent string, a Attrs) {
	for _, k := range a.Keys() {
		fmt.Fprintf(buf, "%s%s=%q;\n", indent, k, a[k])
	}
}

func fmtAttrs(a Attrs) string {
	parts := make([]string, 0, len(a))
	for _, k := range a.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%q", k, a[k]))
	}
	return strings.Join(parts, ", ")
}
