package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tradingpt/tptdiagram/pkg/errors"
)

func sample() *Diagram {
	return &Diagram{
		Name:      "sample",
		Title:     "Sample",
		Filename:  "sample_out",
		Format:    "png",
		Direction: TopToBottom,
		Nodes: []Node{
			{ID: "users", Category: "aws.compute.EC2", Label: "Users"},
		},
		Clusters: []Cluster{
			{
				Label: "VPC",
				Nodes: []Node{{ID: "alb", Category: "aws.network.ELB", Label: "ALB"}},
				Clusters: []Cluster{
					{
						Label: "Subnet",
						Attrs: Attrs{"bgcolor": "#C8E6C9"},
						Nodes: []Node{{ID: "app", Category: "aws.compute.EC2", Label: "App\n10.0.3.118"}},
					},
				},
			},
		},
		Edges: []Edge{
			{From: "users", To: "alb", Label: "HTTPS", Color: "red", Style: StyleBold},
			{From: "alb", To: "app"},
		},
		Banner: Banner{
			Headline:      "done",
			OutputCaption: "Output file:",
			Section:       "Includes:",
			Items:         []string{"- one", "- two"},
		},
	}
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range []Direction{TopToBottom, LeftToRight, BottomToTop, RightToLeft} {
		if !d.Valid() {
			t.Errorf("%q.Valid() = false, want true", d)
		}
	}
	for _, d := range []Direction{"", "tb", "XY"} {
		if d.Valid() {
			t.Errorf("%q.Valid() = true, want false", d)
		}
	}
}

func TestLineStyle_Valid(t *testing.T) {
	for _, s := range []LineStyle{"", StyleSolid, StyleDashed, StyleDotted, StyleBold, StyleInvisible} {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false, want true", s)
		}
	}
	if LineStyle("wavy").Valid() {
		t.Error(`"wavy".Valid() = true, want false`)
	}
}

func TestMerge(t *testing.T) {
	base := Attrs{"a": "1", "b": "2"}
	got := Merge(base, Attrs{"b": "3"}, nil, Attrs{"c": "4"})

	want := Attrs{"a": "1", "b": "3", "c": "4"}
	if len(got) != len(want) {
		t.Fatalf("Merge() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Merge()[%q] = %q, want %q", k, got[k], v)
		}
	}
	if base["b"] != "2" {
		t.Error("Merge() must not modify its inputs")
	}
}

func TestStats(t *testing.T) {
	s := sample().Stats()
	want := Stats{Nodes: 3, Edges: 2, Clusters: 2, MaxDepth: 2}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestAllNodes_Order(t *testing.T) {
	var ids []string
	for _, n := range sample().AllNodes() {
		ids = append(ids, n.ID)
	}
	if strings.Join(ids, ",") != "users,alb,app" {
		t.Errorf("AllNodes() order = %v, want [users alb app]", ids)
	}
}

func TestWalk_Depth(t *testing.T) {
	var got []string
	sample().Walk(func(c *Cluster, depth int) {
		got = append(got, strings.Repeat(">", depth)+c.Label)
	})
	if strings.Join(got, ",") != "VPC,>Subnet" {
		t.Errorf("Walk() visited %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Diagram)
		want   errors.Code
	}{
		{"valid", func(d *Diagram) {}, ""},
		{"empty name", func(d *Diagram) { d.Name = "" }, errors.ErrCodeInvalidDefinition},
		{"empty filename", func(d *Diagram) { d.Filename = "" }, errors.ErrCodeInvalidDefinition},
		{"bad direction", func(d *Diagram) { d.Direction = "UP" }, errors.ErrCodeInvalidDirection},
		{"bad format", func(d *Diagram) { d.Format = "gif" }, errors.ErrCodeInvalidFormat},
		{"unknown category", func(d *Diagram) { d.Nodes[0].Category = "aws.compute.Lambda2" }, errors.ErrCodeUnknownCategory},
		{"duplicate id", func(d *Diagram) { d.Clusters[0].Nodes[0].ID = "users" }, errors.ErrCodeDuplicateNode},
		{"missing id", func(d *Diagram) { d.Nodes[0].ID = "" }, errors.ErrCodeInvalidDefinition},
		{"unknown source", func(d *Diagram) { d.Edges[0].From = "ghost" }, errors.ErrCodeUnknownNode},
		{"unknown target", func(d *Diagram) { d.Edges[1].To = "ghost" }, errors.ErrCodeUnknownNode},
		{"bad style", func(d *Diagram) { d.Edges[1].Style = "wavy" }, errors.ErrCodeInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sample()
			tt.mutate(d)
			err := d.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	d := sample()
	d.Nodes[0].Category = "nope"
	d.Edges[1].To = "ghost"

	err := d.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown category") || !strings.Contains(msg, "ghost") {
		t.Errorf("Validate() = %q, want both problems reported", msg)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("Categories() is empty")
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].ID >= cats[i].ID {
			t.Errorf("Categories() not sorted at %d: %q >= %q", i, cats[i-1].ID, cats[i].ID)
		}
	}

	c, ok := LookupCategory("aws.database.RDS")
	if !ok {
		t.Fatal("LookupCategory(aws.database.RDS) not found")
	}
	if c.Provider() != "aws" || c.Name() != "RDS" || c.Shape != "cylinder" {
		t.Errorf("RDS category = %+v (provider %q, name %q)", c, c.Provider(), c.Name())
	}

	if _, ok := LookupCategory("aws.compute.EC3"); ok {
		t.Error("LookupCategory(aws.compute.EC3) should fail")
	}
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	if err := sample().WriteBanner(&buf, "sample_out.png"); err != nil {
		t.Fatalf("WriteBanner() error: %v", err)
	}

	want := "done\nOutput file: sample_out.png\n\nIncludes:\n  - one\n  - two\n"
	if buf.String() != want {
		t.Errorf("WriteBanner() = %q, want %q", buf.String(), want)
	}
}

func TestWriteBanner_Stable(t *testing.T) {
	d := sample()
	var a, b bytes.Buffer
	_ = d.WriteBanner(&a, "x.png")
	_ = d.WriteBanner(&b, "x.png")
	if a.String() != b.String() {
		t.Error("WriteBanner() output differs between calls")
	}
}

func TestWriteBanner_HeadlineOnly(t *testing.T) {
	d := &Diagram{Banner: Banner{Headline: "ok"}}
	var buf bytes.Buffer
	_ = d.WriteBanner(&buf, "x.png")
	if buf.String() != "ok\n" {
		t.Errorf("WriteBanner() = %q, want %q", buf.String(), "ok\n")
	}
}
