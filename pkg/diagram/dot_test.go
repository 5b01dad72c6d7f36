package diagram

import (
	"strings"
	"testing"
)

func TestToDOT_Basic(t *testing.T) {
	dot := sample().ToDOT(Options{})

	for _, want := range []string{
		`digraph "sample" {`,
		`label="Sample";`,
		`rankdir="TB";`,
		`"users" [`,
		`"alb" [`,
		`"users" -> "alb" [color="red", label="HTTPS", style="bold"];`,
		`"alb" -> "app";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, dot)
		}
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	d := sample()
	first := d.ToDOT(Options{})
	for i := 0; i < 5; i++ {
		if got := d.ToDOT(Options{}); got != first {
			t.Fatal("ToDOT() output is not stable across calls")
		}
	}
}

func TestToDOT_Clusters(t *testing.T) {
	dot := sample().ToDOT(Options{})

	vpc := strings.Index(dot, "subgraph cluster_0 {")
	subnet := strings.Index(dot, "subgraph cluster_1 {")
	if vpc < 0 || subnet < 0 || subnet < vpc {
		t.Fatalf("ToDOT() clusters not numbered depth-first:\n%s", dot)
	}

	// Depth 0 gets the first palette color, an explicit bgcolor wins at depth 1.
	if !strings.Contains(dot, `bgcolor="#E5F5FD";`) {
		t.Error("top-level cluster missing default depth background")
	}
	if !strings.Contains(dot, `bgcolor="#C8E6C9";`) {
		t.Error("nested cluster lost its own bgcolor")
	}
	if strings.Contains(dot, `bgcolor="#EBF3E7";`) {
		t.Error("nested cluster default background should be overridden")
	}
}

func TestToDOT_NodeCategoryStyle(t *testing.T) {
	d := sample()
	d.Nodes[0].Category = "aws.database.RDS"
	dot := d.ToDOT(Options{})

	if !strings.Contains(dot, `"users" [fillcolor="#C925D1", fontcolor="white", label="Users", shape="cylinder", tooltip="aws.database.RDS"];`) {
		t.Errorf("ToDOT() node line missing category style:\n%s", dot)
	}
}

func TestToDOT_MultilineLabel(t *testing.T) {
	dot := sample().ToDOT(Options{})
	if !strings.Contains(dot, `label="App\n10.0.3.118"`) {
		t.Error("ToDOT() should keep newlines as DOT line breaks")
	}
}

func TestToDOT_UndirectedInvisible(t *testing.T) {
	d := sample()
	d.Edges = append(d.Edges, Edge{From: "users", To: "app", Style: StyleInvisible, Undirected: true})
	dot := d.ToDOT(Options{})

	if !strings.Contains(dot, `"users" -> "app" [dir="none", style="invis"];`) {
		t.Errorf("ToDOT() undirected edge wrong:\n%s", dot)
	}
}

func TestToDOT_AttributeLayers(t *testing.T) {
	d := sample()
	d.GraphAttrs = Attrs{"splines": "polyline"}
	d.NodeAttrs = Attrs{"fontsize": "14"}
	d.ClusterAttrs = Attrs{"fontsize": "15"}
	dot := d.ToDOT(Options{})

	if !strings.Contains(dot, `splines="polyline";`) || strings.Contains(dot, `splines="ortho";`) {
		t.Error("graph attribute should override the default")
	}
	if !strings.Contains(dot, `fontsize="14"`) {
		t.Error("node attribute missing from node defaults")
	}
	if strings.Count(dot, `fontsize="15";`) < 2 {
		t.Error("cluster attribute should apply to every cluster")
	}
}

func TestToDOT_FontOverride(t *testing.T) {
	d := sample()
	d.GraphAttrs = Attrs{"fontname": "AppleGothic"}
	d.Clusters[0].Attrs = Attrs{"fontname": "AppleGothic"}
	dot := d.ToDOT(Options{FontName: "Noto Sans CJK KR"})

	if strings.Contains(dot, "AppleGothic") || strings.Contains(dot, "Sans-Serif") {
		t.Errorf("FontName should replace every font:\n%s", dot)
	}
	// graph, node, edge and two clusters
	if n := strings.Count(dot, `fontname="Noto Sans CJK KR"`); n != 5 {
		t.Errorf("FontName applied %d times, want 5", n)
	}
}
