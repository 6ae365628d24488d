// Command levain-scale recalculates and rescales recipe files offline with the same engine the API uses
package main

import (
	"fmt"
	"io"
	"os"

	"levain/internal/core/bakers"
	"levain/internal/platform/logger"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	output   string
	keywords []string
	verbose  bool
}

func (o *options) engine() *bakers.Engine {
	return bakers.NewEngine(bakers.NewFlourClassifier(o.keywords...))
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "levain-scale",
		Short: "Baker's percentages and yield scaling for recipe files",
		Long: `levain-scale reads a recipe in YAML or JSON and prints it with baker's percentages,
or resized to a new flour weight or yield. FILE may be "-" to read stdin.

Examples:
  levain-scale percentages pane.yaml
  levain-scale flour pane.yaml --weight 1500
  levain-scale pieces pane.yaml --count 6 --weight 250 -o yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			switch o.output {
			case outputTable, outputYAML, outputJSON:
			default:
				return fmt.Errorf("unknown output %q (table, yaml, json)", o.output)
			}
			lvl := "warn"
			if o.verbose {
				lvl = "debug"
			}
			logger.Init(logger.Options{Level: lvl, Format: "console", Writer: stderr, Service: "levain-scale"})
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&o.output, "output", "o", outputTable, "Output format: table, yaml or json")
	root.PersistentFlags().StringSliceVar(&o.keywords, "flour-keywords", nil, "Name fragments counted as flour when no ingredient is tagged (default farina,flour)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(newPercentagesCmd(o), newFlourCmd(o), newPiecesCmd(o))
	return root
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
