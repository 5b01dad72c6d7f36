package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/definition"
	"github.com/tradingpt/tptdiagram/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DiagramListModel - Interactive diagram selection
// =============================================================================

// DiagramListModel is the bubbletea model for interactive diagram selection.
type DiagramListModel struct {
	Diagrams []*diagram.Diagram
	Cursor   int
	Selected *diagram.Diagram
}

// NewDiagramListModel creates a new diagram list model.
func NewDiagramListModel(diagrams []*diagram.Diagram) DiagramListModel {
	return DiagramListModel{Diagrams: diagrams}
}

func (m DiagramListModel) Init() tea.Cmd {
	return nil
}

func (m DiagramListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Diagrams)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Diagrams) > 0 {
				m.Selected = m.Diagrams[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DiagramListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, d := range m.Diagrams {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, d.Name, oneLine(d.Title))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("    " + d.OutputName()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Diagrams))))
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// pick command
// =============================================================================

// pickCommand creates the pick command: choose a built-in diagram in a
// terminal list and render it.
func (c *CLI) pickCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a built-in diagram interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			diagrams, err := definition.Builtins()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewDiagramListModel(diagrams), tea.WithContext(ctx), tea.WithOutput(c.Err))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			m, ok := final.(DiagramListModel)
			if !ok || m.Selected == nil {
				c.printInfo("No diagram selected")
				return nil
			}
			return c.runRender(ctx, []*diagram.Diagram{m.Selected}, &opts)
		},
	}

	addOutputFlags(cmd, &opts)
	addCacheFlags(cmd, &opts)

	return cmd
}
