package cli

import (
	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Commands:
//   - render: write one or more diagrams to image files
//   - list: show the built-in diagrams
//   - dot: print the Graphviz source of a diagram
//   - inspect: print the cluster and node tree of a diagram
//   - pick: choose a built-in diagram interactively and render it
//   - cache: manage the rendered artifact cache
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "tptdiagram renders the TradingPT infrastructure diagrams",
		Long: `tptdiagram renders the TradingPT development-server architecture diagrams
(AWS infrastructure and the GitHub Actions CI/CD pipeline) to image files.

Each diagram is a declarative definition; the three built-in diagrams are
embedded in the binary and custom ones can be loaded with --file.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
