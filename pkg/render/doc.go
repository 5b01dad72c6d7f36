// Package render is the rendering backend: it turns a Graphviz DOT document
// into image bytes.
//
// # Formats
//
// SVG is rendered in-process by [github.com/goccy/go-graphviz], so no system
// Graphviz installation is needed. PNG and PDF are produced by rendering SVG
// and converting it with the external rsvg-convert tool (librsvg). The "dot"
// format returns the DOT source itself.
//
//	png, err := render.Render(ctx, dot, render.FormatPNG)
//
// # Errors
//
// Failures are returned as [errors.Error] values with code RENDER_FAILED
// (Graphviz or converter failure), INVALID_FORMAT, or UNSUPPORTED (missing
// rsvg-convert). Nothing is retried.
package render
