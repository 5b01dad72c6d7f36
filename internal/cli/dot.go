package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tradingpt/tptdiagram/pkg/diagram"
	"github.com/tradingpt/tptdiagram/pkg/errors"
)

// dotCommand creates the dot command printing a diagram's Graphviz source.
func (c *CLI) dotCommand() *cobra.Command {
	var file, font string

	cmd := &cobra.Command{
		Use:               "dot [name]",
		Short:             "Print the Graphviz DOT source of a diagram",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), nameOrFile(&file)),
		ValidArgsFunction: completeBuiltinNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadOne(args, file)
			if err != nil {
				return err
			}
			_, err = io.WriteString(c.Out, d.ToDOT(diagram.Options{FontName: font}))
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "use a custom definition file")
	cmd.Flags().StringVar(&font, "font", "", "font for every label")

	return cmd
}

// nameOrFile rejects a built-in name combined with --file.
func nameOrFile(file *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && *file != "" {
			return errors.New(errors.ErrCodeUnsupported, "give a diagram name or --file, not both")
		}
		return nil
	}
}

// loadOne loads a single diagram from a built-in name or a definition file.
func loadOne(args []string, file string) (*diagram.Diagram, error) {
	opts := renderOpts{file: file}
	diagrams, err := resolveDiagrams(args, &opts)
	if err != nil {
		return nil, err
	}
	return diagrams[0], nil
}
