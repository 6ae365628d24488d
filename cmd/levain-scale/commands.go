package main

import (
	"errors"
	"fmt"

	"levain/internal/core/bakers"
	"levain/internal/platform/logger"

	"github.com/spf13/cobra"
)

// result is what every subcommand hands to the renderer
type result struct {
	Mode     string
	Ratio    float64
	Drift    float64
	Scaled   bool
	Recipe   recipeFile
	Warnings []string
}

// load reads FILE and derives the percentages every subcommand starts from
func load(cmd *cobra.Command, o *options, path string) (recipeFile, bakers.Recipe, error) {
	rf, err := readRecipe(path, cmd.InOrStdin())
	if err != nil {
		return rf, bakers.Recipe{}, err
	}
	r := rf.recipe()
	if out := o.engine().Recalculate(&r); !out.OK() {
		return rf, r, fmt.Errorf("no flour baseline (%s): set total_flour_weight or tag an ingredient with primary_flour", out.Reason)
	}
	logger.Get().Debug().
		Float64("flour", r.TotalFlourWeight).
		Int("ingredients", len(r.Ingredients)).
		Int("phases", len(r.Phases)).
		Msg("recipe loaded")
	return rf, r, nil
}

func warnings(r bakers.Recipe) []string {
	var out []string
	for _, is := range bakers.CheckPhases(r) {
		out = append(out, is.Field+": "+is.Message)
	}
	return out
}

func newPercentagesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "percentages FILE",
		Short: "Print the recipe with every ingredient as a percentage of the flour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rf, r, err := load(cmd, o, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o.output, result{
				Mode:     "percentages",
				Ratio:    1,
				Recipe:   rf.withRecipe(r),
				Warnings: warnings(r),
			})
		},
	}
}

func newFlourCmd(o *options) *cobra.Command {
	var weight float64
	cmd := &cobra.Command{
		Use:   "flour FILE",
		Short: "Resize the recipe to a new total flour weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(weight > 0) {
				return errors.New("invalid parameters: --weight must be positive")
			}
			rf, r, err := load(cmd, o, args[0])
			if err != nil {
				return err
			}
			res := o.engine().ScaleToFlour(&r, weight)
			if !res.OK() {
				return fmt.Errorf("invalid parameters: %s", res.Reason)
			}
			return render(cmd.OutOrStdout(), o.output, result{
				Mode:     "flour",
				Ratio:    res.Ratio,
				Scaled:   res.PhasesScaled,
				Recipe:   rf.withRecipe(r),
				Warnings: warnings(r),
			})
		},
	}
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "New total flour weight")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func newPiecesCmd(o *options) *cobra.Command {
	var (
		count  int
		weight float64
	)
	cmd := &cobra.Command{
		Use:   "pieces FILE",
		Short: "Resize the recipe to a piece count and weight per piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 || !(weight > 0) {
				return errors.New("invalid parameters: --count and --weight must be positive")
			}
			rf, r, err := load(cmd, o, args[0])
			if err != nil {
				return err
			}
			res := o.engine().ScaleToPieces(&r, count, weight)
			if !res.OK() {
				return fmt.Errorf("invalid parameters: %s", res.Reason)
			}
			return render(cmd.OutOrStdout(), o.output, result{
				Mode:     "pieces",
				Ratio:    res.Ratio,
				Drift:    res.Drift,
				Scaled:   res.PhasesScaled,
				Recipe:   rf.withRecipe(r),
				Warnings: warnings(r),
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of pieces")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight of one piece")
	_ = cmd.MarkFlagRequired("count")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
