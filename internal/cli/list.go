package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/definition"
	"github.com/tradingpt/tptdiagram/pkg/diagram"
)

// listCommand creates the list command showing the built-in diagrams.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams, err := definition.Builtins()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, diagramTable(diagrams))
			return nil
		},
	}
}

// diagramTable renders diagrams as a bordered table.
func diagramTable(diagrams []*diagram.Diagram) string {
	rows := make([][]string, 0, len(diagrams))
	for _, d := range diagrams {
		s := d.Stats()
		rows = append(rows, []string{
			d.Name,
			oneLine(d.Title),
			string(d.Direction),
			fmt.Sprintf("%d/%d/%d", s.Nodes, s.Edges, s.Clusters),
			d.OutputName(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Dir", "Nodes/Edges/Clusters", "Output").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 4:
				return base.Foreground(colorGray)
			}
			return base
		})

	return t.Render()
}
