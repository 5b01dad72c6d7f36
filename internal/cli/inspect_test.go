package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/tradingpt/tptdiagram/pkg/definition"
	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
)

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdefgh", 5, "abcd…"},
		{"한글", 6, "한글  "},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		got := fit(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := runewidth.StringWidth(got); w != tt.width {
			t.Errorf("fit(%q, %d) width = %d", tt.in, tt.width, w)
		}
	}
}

func TestInspectLines(t *testing.T) {
	d, err := definition.Builtin("cicd-pipeline")
	if err != nil {
		t.Fatal(err)
	}
	lines := inspectLines(d)
	text := strings.Join(lines, "\n")

	for _, want := range []string{
		"cicd-pipeline",
		"9 nodes, 9 edges, 5 clusters",
		"onprem.vcs.Github",
		"codedeploy",
		"github -> actions",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("inspect output missing %q:\n%s", want, text)
		}
	}
	for _, l := range lines {
		if strings.Contains(l, "\n") {
			t.Errorf("line contains a raw newline: %q", l)
		}
	}
}

func TestEdgeLine(t *testing.T) {
	e := diagram.Edge{From: "a", To: "b", Label: "x\ny", Style: diagram.StyleDashed, Undirected: true}
	got := edgeLine(e)
	if !strings.HasPrefix(got, "a -- b") || !strings.Contains(got, `"x / y"`) || !strings.Contains(got, "dashed") {
		t.Errorf("edgeLine = %q", got)
	}
}

func TestListCommand(t *testing.T) {
	c, out, _ := testCLI()
	if err := run(c, "list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{
		"architecture", "cicd-pipeline", "clean-architecture",
		"tpt_dev_architecture.png", "tpt_dev_cicd_pipeline.png", "tpt_dev_architecture_clean.png",
		"20/22/12",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDotCommand(t *testing.T) {
	c, out, _ := testCLI()
	if err := run(c, "dot", "architecture", "--font", "Noto Sans CJK KR"); err != nil {
		t.Fatalf("dot: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, `digraph "architecture" {`) {
		t.Errorf("dot output should start with the digraph header, got %.60q", s)
	}
	if !strings.Contains(s, `fontname="Noto Sans CJK KR"`) {
		t.Error("font override missing from DOT output")
	}
}

func TestInspectCommand(t *testing.T) {
	c, out, _ := testCLI()
	if err := run(c, "inspect", "clean-architecture"); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out.String(), "cluster") {
		t.Errorf("inspect output should list clusters:\n%s", out.String())
	}
}

func TestDiagramListModel(t *testing.T) {
	diagrams, err := definition.Builtins()
	if err != nil {
		t.Fatal(err)
	}
	var m tea.Model = NewDiagramListModel(diagrams)

	press := func(key string) {
		var msg tea.KeyMsg
		switch key {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		m, _ = m.Update(msg)
	}

	press("down")
	press("down")
	press("down") // clamps at the last entry
	press("up")
	if got := m.(DiagramListModel).Cursor; got != 1 {
		t.Fatalf("Cursor = %d, want 1", got)
	}
	if !strings.Contains(m.View(), "▸ cicd-pipeline") {
		t.Errorf("view should mark the cursor row:\n%s", m.View())
	}

	press("enter")
	sel := m.(DiagramListModel).Selected
	if sel == nil || sel.Name != "cicd-pipeline" {
		t.Errorf("Selected = %v, want cicd-pipeline", sel)
	}
}

func TestNameAndFileRejected(t *testing.T) {
	for _, cmd := range []string{"dot", "inspect"} {
		t.Run(cmd, func(t *testing.T) {
			c, out, _ := testCLI()
			err := run(c, cmd, "architecture", "--file", "custom.toml")
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Fatalf("%s with name and --file: error = %v, want UNSUPPORTED", cmd, err)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed, got %q", out.String())
			}
		})
	}
}
