package diagram

import (
	"github.com/tradingpt/tptdiagram/pkg/errors"
	"github.com/tradingpt/tptdiagram/pkg/render"
)

// Validate checks that d can be rendered: required fields are set, every
// category is known, node IDs are unique and every edge endpoint exists.
// All problems are reported together.
func (d *Diagram) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDefinition, "diagram name must not be empty"))
	}
	if d.Title == "" {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDefinition, "diagram %q: title must not be empty", d.Name))
	}
	if d.Filename == "" {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDefinition, "diagram %q: filename must not be empty", d.Name))
	}
	if !d.Direction.Valid() {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDirection, "diagram %q: invalid direction %q (must be TB, LR, BT or RL)", d.Name, d.Direction))
	}
	if err := render.ValidateFormat(d.Format); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool)
	for _, n := range d.AllNodes() {
		switch {
		case n.ID == "":
			errs = append(errs, errors.New(errors.ErrCodeInvalidDefinition, "node with label %q has no id", n.Label))
		case seen[n.ID]:
			errs = append(errs, errors.New(errors.ErrCodeDuplicateNode, "duplicate node id %q", n.ID))
		}
		seen[n.ID] = true

		if _, ok := LookupCategory(n.Category); !ok {
			errs = append(errs, errors.New(errors.ErrCodeUnknownCategory, "node %q: unknown category %q", n.ID, n.Category))
		}
	}

	for i, e := range d.Edges {
		if !seen[e.From] {
			errs = append(errs, errors.New(errors.ErrCodeUnknownNode, "edge %d: unknown source node %q", i, e.From))
		}
		if !seen[e.To] {
			errs = append(errs, errors.New(errors.ErrCodeUnknownNode, "edge %d: unknown target node %q", i, e.To))
		}
		if !e.Style.Valid() {
			errs = append(errs, errors.New(errors.ErrCodeInvalidStyle, "edge %d (%s -> %s): invalid style %q", i, e.From, e.To, e.Style))
		}
	}

	return errors.Join(errs)
}
