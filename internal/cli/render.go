package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/definition"
	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
	"github.com/tradingpt/tptdiagram/pkg/pipeline"
	"github.com/tradingpt/tptdiagram/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	all       bool   // render every built-in diagram
	match     string // glob or substring selecting built-in diagrams
	file      string // custom definition file
	format    string // output format override
	outputDir string // directory receiving the artifacts
	font      string // font override for every label
	refresh   bool   // skip cache lookup
	noCache   bool   // disable the artifact cache
	cacheURL  string // redis:// URL for a shared cache
	quiet     bool   // suppress banners and status lines
}

// cacheOpts returns the cache selection for these flags.
func (o *renderOpts) cacheOpts() cacheOpts {
	return cacheOpts{noCache: o.noCache, url: o.cacheURL}
}

// pipelineOpts returns the pipeline options for d.
func (o *renderOpts) pipelineOpts(d *diagram.Diagram) pipeline.Options {
	return pipeline.Options{
		Diagram:   d,
		Format:    o.format,
		OutputDir: o.outputDir,
		FontName:  o.font,
		Refresh:   o.refresh,
	}
}

// addCacheFlags registers the cache flags shared by render and pick.
func addCacheFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "shared cache location (redis://host:port/db)")
}

// addOutputFlags registers the output flags shared by render and pick.
func addOutputFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "",
		"output format: "+strings.Join(render.Formats, ", ")+" (default from definition)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", pipeline.DefaultOutputDir, "directory to write images to")
	cmd.Flags().StringVar(&opts.font, "font", "", "font for every label (e.g. \"Noto Sans CJK KR\")")
}

// renderCommand creates the render command.
//
// With a single diagram name and no flags it writes <filename>.<format> to
// the current directory and prints the diagram's summary banner.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [name...]",
		Short: "Render diagrams to image files",
		Long: `Render one or more diagrams to image files.

Diagrams are chosen by built-in name, --all, --match or --file. Each image is
written to <output-dir>/<filename>.<format>, replacing any previous file, and
the diagram's summary banner is printed to standard output.`,
		Example: `  tptdiagram render architecture
  tptdiagram render --all --output-dir docs/img
  tptdiagram render --match '*architecture*' --format svg
  tptdiagram render --file infra.toml --font "Noto Sans CJK KR"`,
		ValidArgsFunction: completeBuiltinNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams, err := resolveDiagrams(args, &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), diagrams, &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "render every built-in diagram")
	cmd.Flags().StringVarP(&opts.match, "match", "m", "", "render built-in diagrams whose name matches (glob or substring)")
	cmd.Flags().StringVar(&opts.file, "file", "", "render a custom definition file")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print banners or status lines")
	addOutputFlags(cmd, &opts)
	addCacheFlags(cmd, &opts)

	return cmd
}

// resolveDiagrams loads the diagrams selected by args and flags, in the
// order given and without duplicates.
func resolveDiagrams(args []string, opts *renderOpts) ([]*diagram.Diagram, error) {
	var names []string
	switch {
	case opts.all:
		names = definition.BuiltinNames()
	case opts.match != "":
		matched, err := definition.Match(opts.match)
		if err != nil {
			return nil, err
		}
		names = matched
	}
	names = append(names, args...)

	var out []*diagram.Diagram
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		d, err := definition.Builtin(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	if opts.file != "" {
		d, err := definition.LoadFile(opts.file)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeDiagramNotFound,
			"no diagram selected: pass a name, --all, --match or --file (available: %s)",
			strings.Join(definition.BuiltinNames(), ", "))
	}
	return out, nil
}

// runRender renders diagrams in order and stops at the first failure.
func (c *CLI) runRender(ctx context.Context, diagrams []*diagram.Diagram, opts *renderOpts) error {
	if opts.refresh && opts.noCache && !opts.quiet {
		c.printWarning("--refresh has no effect with --no-cache")
	}

	runner, err := c.newRunner(ctx, opts.cacheOpts())
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)

	var bar *progressbar.ProgressBar
	if len(diagrams) > 1 && !opts.quiet {
		bar = newProgressBar(c.Err, len(diagrams))
	}

	results := make([]*pipeline.Result, 0, len(diagrams))
	for _, d := range diagrams {
		if err := ctx.Err(); err != nil {
			return err
		}

		var spin *Spinner
		if bar != nil {
			bar.Describe(d.Name)
		} else if !opts.quiet {
			spin = newSpinner(ctx, c.Err, "Rendering "+d.Name)
			spin.Start()
		}

		res, err := runner.Execute(ctx, opts.pipelineOpts(d))
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			if bar != nil {
				_ = bar.Exit()
				fmt.Fprintln(c.Err)
			}
			return fmt.Errorf("render %s: %w", d.Name, err)
		}
		c.Logger.Debug("rendered", "diagram", d.Name, "result", res)
		results = append(results, res)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(c.Err)
	}
	prog.done(fmt.Sprintf("Rendered %d diagram(s)", len(results)))

	if opts.quiet {
		return nil
	}
	for i, res := range results {
		d := diagrams[i]
		c.printSuccess("Rendered %s", d.Name)
		c.printFile(res.Path)
		c.printStats(res.Diagram.Nodes, res.Diagram.Edges, res.Diagram.Clusters, res.CacheHit)
		if err := d.WriteBanner(c.Out, res.Path); err != nil {
			return err
		}
	}
	return nil
}

// newProgressBar returns a bar counting rendered diagrams on w.
func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

// completeBuiltinNames offers built-in diagram names for shell completion.
func completeBuiltinNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, name := range definition.BuiltinNames() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
