// Package pipeline turns a diagram into an image file on disk.
//
// The pipeline has three stages:
//
//  1. DOT: emit the Graphviz source for the diagram
//  2. Render: lay out and export through the rendering backend, consulting
//     the artifact cache first
//  3. Write: store the artifact at OutputDir/<filename>.<format>, replacing
//     any previous file
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	d, _ := definition.Builtin("architecture")
//	result, err := runner.Execute(ctx, pipeline.Options{Diagram: d})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.WriteBanner(os.Stdout, result.Path)
package pipeline

import (
	"time"

	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
	"github.com/tradingpt/tptdiagram/pkg/render"
)

// DefaultOutputDir is where artifacts are written when Options.OutputDir is
// empty. The built-in diagrams have always been written next to the caller.
const DefaultOutputDir = "."

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a single pipeline run.
type Options struct {
	// Diagram to render. Required.
	Diagram *diagram.Diagram

	// Format overrides Diagram.Format when set.
	Format string

	// OutputDir receives the artifact. Created if missing.
	OutputDir string

	// FontName replaces every font attribute in the DOT source.
	FontName string

	// Refresh skips the cache lookup; the fresh artifact is still stored.
	Refresh bool

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Diagram == nil {
		return errors.New(errors.ErrCodeInvalidDefinition, "diagram is required")
	}
	if o.Format == "" {
		o.Format = o.Diagram.Format
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	o.validated = true
	return nil
}

// DOTOptions returns the DOT emission options for this run.
func (o *Options) DOTOptions() diagram.Options {
	return diagram.Options{FontName: o.FontName}
}

// OutputName returns the artifact file name, <filename>.<format>.
func (o *Options) OutputName() string {
	return o.Diagram.Filename + "." + o.Format
}

// =============================================================================
// Result
// =============================================================================

// Result describes a completed pipeline run.
type Result struct {
	// Path is the written artifact, OutputDir joined with the output name.
	Path string

	// Size is the artifact size in bytes.
	Size int

	// Diagram holds node, edge and cluster counts.
	Diagram diagram.Stats

	// Stats contains timing information.
	Stats Stats

	// CacheHit is true when the artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RenderTime time.Duration
	WriteTime  time.Duration
}
