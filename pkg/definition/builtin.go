package definition

import (
	"bytes"
	"embed"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// builtinOrder fixes the listing order of the embedded definitions.
var builtinOrder = []string{
	"architecture",
	"cicd-pipeline",
	"clean-architecture",
}

// BuiltinNames returns the names of the embedded diagrams in display order.
func BuiltinNames() []string {
	return append([]string(nil), builtinOrder...)
}

// Builtin loads the embedded diagram with the given name. Each call returns
// a fresh value, so callers may modify it.
func Builtin(name string) (*diagram.Diagram, error) {
	data, err := BuiltinSource(name)
	if err != nil {
		return nil, err
	}
	d, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDefinition), err, "builtin %s", name)
	}
	return d, nil
}

// BuiltinSource returns the raw TOML of the embedded diagram.
func BuiltinSource(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeDiagramNotFound,
			"no built-in diagram named %q (available: %s)", name, strings.Join(builtinOrder, ", "))
	}
	return data, nil
}

// Builtins loads every embedded diagram in display order.
func Builtins() ([]*diagram.Diagram, error) {
	out := make([]*diagram.Diagram, 0, len(builtinOrder))
	for _, name := range builtinOrder {
		d, err := Builtin(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Match returns the built-in names selected by pattern. A pattern with
// wildcards ("*", "?", "[", "{") is a glob; anything else matches as a
// substring. An empty pattern selects everything.
func Match(pattern string) ([]string, error) {
	if pattern == "" {
		return BuiltinNames(), nil
	}

	match := func(name string) bool { return strings.Contains(name, pattern) }
	if strings.ContainsAny(pattern, "*?[{") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "invalid pattern %q", pattern)
		}
		match = g.Match
	}

	var names []string
	for _, name := range builtinOrder {
		if match(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeDiagramNotFound, "no built-in diagram matches %q", pattern)
	}
	return names, nil
}
