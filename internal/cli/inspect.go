package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/diagram"
)

const (
	maxNameWidth  = 44 // widest tree column before truncation
	maxLabelWidth = 56 // widest label column before truncation
)

// inspectCommand creates the inspect command printing the cluster tree.
func (c *CLI) inspectCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:               "inspect [name]",
		Short:             "Show the clusters, nodes and edges of a diagram",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), nameOrFile(&file)),
		ValidArgsFunction: completeBuiltinNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadOne(args, file)
			if err != nil {
				return err
			}
			for _, line := range inspectLines(d) {
				fmt.Fprintln(c.Out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "use a custom definition file")

	return cmd
}

// treeRow is one line of the inspect tree before column alignment.
type treeRow struct {
	name  string // indented id or cluster label
	kind  string // category, or "cluster"
	label string
}

// inspectLines returns the diagram as an aligned tree followed by its edges.
// Columns are aligned by display width, so Korean labels line up.
func inspectLines(d *diagram.Diagram) []string {
	s := d.Stats()
	lines := []string{
		StyleTitle.Render(d.Name) + " " + StyleDim.Render(fmt.Sprintf("(%s, %d nodes, %d edges, %d clusters, depth %d)",
			d.Direction, s.Nodes, s.Edges, s.Clusters, s.MaxDepth)),
		oneLine(d.Title),
		"",
	}

	var rows []treeRow
	for _, n := range d.Nodes {
		rows = append(rows, treeRow{name: n.ID, kind: n.Category, label: n.Label})
	}
	for i := range d.Clusters {
		rows = appendCluster(rows, &d.Clusters[i], 0)
	}

	nameWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.name); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	kindWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.kind); w > kindWidth {
			kindWidth = w
		}
	}

	for _, r := range rows {
		lines = append(lines, strings.TrimRight(
			fit(r.name, nameWidth)+"  "+fit(r.kind, kindWidth)+"  "+runewidth.Truncate(oneLine(r.label), maxLabelWidth, "…"),
			" "))
	}

	if len(d.Edges) > 0 {
		lines = append(lines, "", StyleTitle.Render("edges"))
		for _, e := range d.Edges {
			lines = append(lines, "  "+edgeLine(e))
		}
	}
	return lines
}

func appendCluster(rows []treeRow, c *diagram.Cluster, depth int) []treeRow {
	indent := strings.Repeat("  ", depth)
	rows = append(rows, treeRow{name: indent + "[" + oneLine(c.Label) + "]", kind: "cluster"})
	for _, n := range c.Nodes {
		rows = append(rows, treeRow{name: indent + "  " + n.ID, kind: n.Category, label: n.Label})
	}
	for i := range c.Clusters {
		rows = appendCluster(rows, &c.Clusters[i], depth+1)
	}
	return rows
}

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func edgeLine(e diagram.Edge) string {
	arrow := "->"
	if e.Undirected {
		arrow = "--"
	}
	line := e.From + " " + arrow + " " + e.To
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("%q", oneLine(e.Label)))
	}
	if e.Style != "" {
		attrs = append(attrs, string(e.Style))
	}
	if e.Color != "" {
		attrs = append(attrs, e.Color)
	}
	if len(attrs) > 0 {
		line += "  " + StyleDim.Render(strings.Join(attrs, " "))
	}
	return line
}
