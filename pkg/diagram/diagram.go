package diagram

import (
	"maps"
	"slices"
)

// Direction is the Graphviz rank direction of a diagram.
type Direction string

const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
	BottomToTop Direction = "BT"
	RightToLeft Direction = "RL"
)

// Valid reports whether d is one of the four Graphviz rank directions.
func (d Direction) Valid() bool {
	switch d {
	case TopToBottom, LeftToRight, BottomToTop, RightToLeft:
		return true
	}
	return false
}

// LineStyle is the stroke used for an edge.
type LineStyle string

const (
	StyleSolid     LineStyle = "solid"
	StyleDashed    LineStyle = "dashed"
	StyleDotted    LineStyle = "dotted"
	StyleBold      LineStyle = "bold"
	StyleInvisible LineStyle = "invis"
)

// Valid reports whether s is a known line style. The empty style is valid
// and renders as solid.
func (s LineStyle) Valid() bool {
	switch s {
	case "", StyleSolid, StyleDashed, StyleDotted, StyleBold, StyleInvisible:
		return true
	}
	return false
}

// Attrs holds raw Graphviz attributes. Keys are emitted in sorted order so
// the generated DOT is stable.
type Attrs map[string]string

// Merge returns a new Attrs with the entries of each layer applied in order;
// later layers win.
func Merge(layers ...Attrs) Attrs {
	out := Attrs{}
	for _, l := range layers {
		maps.Copy(out, l)
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Node is a single icon with a multi-line label.
type Node struct {
	ID       string // Reference used by edges; never drawn
	Category string // Catalog key, e.g. "aws.compute.EC2"
	Label    string // Display text, may contain newlines
}

// Edge connects two previously declared nodes.
type Edge struct {
	From       string
	To         string
	Label      string
	Color      string
	Style      LineStyle
	Undirected bool // Plain connector instead of an arrow
}

// Cluster is a labelled visual grouping of nodes and nested clusters.
type Cluster struct {
	Label    string
	Attrs    Attrs
	Nodes    []Node
	Clusters []Cluster
}

// Banner is the fixed summary printed after a diagram has been written.
type Banner struct {
	Headline      string
	OutputCaption string
	Section       string
	Items         []string
}

// Diagram is a complete rendering directive for one picture.
type Diagram struct {
	Name      string // Short identifier, e.g. "architecture"
	Title     string // Graph label drawn on the picture
	Filename  string // Output base name without extension
	Format    string // Output format, e.g. "png"
	Direction Direction

	GraphAttrs   Attrs
	NodeAttrs    Attrs
	EdgeAttrs    Attrs
	ClusterAttrs Attrs // Applied to every cluster before its own Attrs

	Nodes    []Node
	Clusters []Cluster
	Edges    []Edge

	Banner Banner
}

// OutputName returns the literal file name the diagram renders to.
func (d *Diagram) OutputName() string {
	return d.Filename + "." + d.Format
}

// Stats summarises the size of a diagram.
type Stats struct {
	Nodes    int
	Edges    int
	Clusters int
	MaxDepth int
}

// Stats counts the nodes, edges and clusters in d.
func (d *Diagram) Stats() Stats {
	s := Stats{Nodes: len(d.Nodes), Edges: len(d.Edges)}
	d.Walk(func(c *Cluster, depth int) {
		s.Clusters++
		s.Nodes += len(c.Nodes)
		if depth+1 > s.MaxDepth {
			s.MaxDepth = depth + 1
		}
	})
	return s
}

// Walk visits every cluster depth-first in declaration order. Top-level
// clusters have depth 0.
func (d *Diagram) Walk(fn func(c *Cluster, depth int)) {
	for i := range d.Clusters {
		walk(&d.Clusters[i], 0, fn)
	}
}

func walk(c *Cluster, depth int, fn func(*Cluster, int)) {
	fn(c, depth)
	for i := range c.Clusters {
		walk(&c.Clusters[i], depth+1, fn)
	}
}

// AllNodes returns every node in declaration order: top-level nodes first,
// then cluster nodes depth-first.
func (d *Diagram) AllNodes() []Node {
	nodes := slices.Clone(d.Nodes)
	d.Walk(func(c *Cluster, _ int) {
		nodes = append(nodes, c.Nodes...)
	})
	return nodes
}

// Node returns the node with the given ID.
func (d *Diagram) Node(id string) (Node, bool) {
	for _, n := range d.AllNodes() {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
