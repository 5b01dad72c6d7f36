package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tradingpt/tptdiagram/pkg/errors"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatDOT = "dot"
)

// Formats lists every supported output format in display order.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF, FormatDOT}

// PNGScale is the rsvg-convert zoom factor for PNG output.
const PNGScale = 1.0

// ValidateFormat returns an error unless format is one of [Formats].
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be %s)", format, strings.Join(Formats, ", "))
}

// Render lays out a DOT document and exports it in the given format.
//
// SVG is produced in-process by Graphviz. PNG and PDF render SVG first and
// convert it with rsvg-convert; the in-process raster device mis-draws
// orthogonal edges. DOT returns the source unchanged.
func Render(ctx context.Context, dot string, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatPNG:
		return ToPNG(ctx, svg, PNGScale)
	case FormatPDF:
		return ToPDF(ctx, svg)
	default:
		return svg, nil
	}
}

// RenderSVG lays out a DOT document with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return graphvizRender(ctx, dot, graphviz.SVG)
}

func graphvizRender(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	if buf.Len() == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "graphviz produced no %s output", format)
	}
	return buf.Bytes(), nil
}
