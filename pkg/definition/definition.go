package definition

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
)

// file is the on-disk TOML shape of a definition.
type file struct {
	Name      string `toml:"name"`
	Title     string `toml:"title"`
	Filename  string `toml:"filename"`
	Format    string `toml:"format"`
	Direction string `toml:"direction"`

	GraphAttr   map[string]string `toml:"graph_attr"`
	NodeAttr    map[string]string `toml:"node_attr"`
	EdgeAttr    map[string]string `toml:"edge_attr"`
	ClusterAttr map[string]string `toml:"cluster_attr"`

	Nodes    []node    `toml:"nodes"`
	Clusters []cluster `toml:"clusters"`
	Edges    []edge    `toml:"edges"`

	Banner banner `toml:"banner"`
}

type node struct {
	ID       string `toml:"id"`
	Category string `toml:"category"`
	Label    string `toml:"label"`
}

type cluster struct {
	Label     string            `toml:"label"`
	GraphAttr map[string]string `toml:"graph_attr"`
	Nodes     []node            `toml:"nodes"`
	Clusters  []cluster         `toml:"clusters"`
}

type edge struct {
	From       string `toml:"from"`
	To         string `toml:"to"`
	Label      string `toml:"label"`
	Color      string `toml:"color"`
	Style      string `toml:"style"`
	Undirected bool   `toml:"undirected"`
}

type banner struct {
	Headline      string   `toml:"headline"`
	OutputCaption string   `toml:"output_caption"`
	Section       string   `toml:"section"`
	Items         []string `toml:"items"`
}

// Defaults applied when a definition leaves them out.
const (
	DefaultFormat    = "png"
	DefaultDirection = diagram.TopToBottom
)

// Load decodes a TOML definition from r and returns the validated diagram.
// Unknown keys are rejected so a misspelled attribute table is not silently
// ignored.
func Load(r io.Reader) (*diagram.Diagram, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "unknown key %q", undecoded[0].String())
	}

	d := f.toDiagram()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile reads and validates the definition stored at path.
func LoadFile(path string) (*diagram.Diagram, error) {
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open definition %s", path)
	}
	defer fh.Close()

	d, err := Load(fh)
	if err != nil {
		return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDefinition), err, "load %s", path)
	}
	return d, nil
}

func (f *file) toDiagram() *diagram.Diagram {
	d := &diagram.Diagram{
		Name:         f.Name,
		Title:        f.Title,
		Filename:     f.Filename,
		Format:       f.Format,
		Direction:    diagram.Direction(f.Direction),
		GraphAttrs:   f.GraphAttr,
		NodeAttrs:    f.NodeAttr,
		EdgeAttrs:    f.EdgeAttr,
		ClusterAttrs: f.ClusterAttr,
		Nodes:        toNodes(f.Nodes),
		Clusters:     toClusters(f.Clusters),
		Banner: diagram.Banner{
			Headline:      f.Banner.Headline,
			OutputCaption: f.Banner.OutputCaption,
			Section:       f.Banner.Section,
			Items:         f.Banner.Items,
		},
	}
	if d.Format == "" {
		d.Format = DefaultFormat
	}
	if d.Direction == "" {
		d.Direction = DefaultDirection
	}

	for _, e := range f.Edges {
		d.Edges = append(d.Edges, diagram.Edge{
			From:       e.From,
			To:         e.To,
			Label:      e.Label,
			Color:      e.Color,
			Style:      diagram.LineStyle(e.Style),
			Undirected: e.Undirected,
		})
	}
	return d
}

func toNodes(in []node) []diagram.Node {
	if len(in) == 0 {
		return nil
	}
	out := make([]diagram.Node, len(in))
	for i, n := range in {
		out[i] = diagram.Node{ID: n.ID, Category: n.Category, Label: n.Label}
	}
	return out
}

func toClusters(in []cluster) []diagram.Cluster {
	if len(in) == 0 {
		return nil
	}
	out := make([]diagram.Cluster, len(in))
	for i, c := range in {
		out[i] = diagram.Cluster{
			Label:    c.Label,
			Attrs:    c.GraphAttr,
			Nodes:    toNodes(c.Nodes),
			Clusters: toClusters(c.Clusters),
		}
	}
	return out
}
