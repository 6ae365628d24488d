package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"levain/internal/core/bakers"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
	outputJSON  = "json"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"})
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"})
)

// render writes res in the chosen format; yaml and json emit a recipe file that reads back in
func render(w io.Writer, format string, res result) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.Recipe); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Recipe)
	default:
		return renderTable(w, res)
	}
}

func renderTable(w io.Writer, res result) error {
	rf := res.Recipe
	var b strings.Builder

	title := rf.Title
	if title == "" {
		title = "recipe"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	var total float64
	for _, ing := range rf.Ingredients {
		total += ing.Quantity
	}
	line := fmt.Sprintf("flour %.2f  total %.2f", rf.TotalFlourWeight, bakers.Round2(total))
	if rf.ServingPieces > 0 {
		line += fmt.Sprintf("  pieces %d x %.2f", rf.ServingPieces, rf.PieceWeight)
	}
	if res.Mode != "percentages" {
		line += fmt.Sprintf("  ratio %.4f", res.Ratio)
	}
	if res.Drift != 0 {
		line += fmt.Sprintf("  drift %+.2f", res.Drift)
	}
	b.WriteString(mutedStyle.Render(line) + "\n\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INGREDIENT\tQUANTITY\tUNIT\tBAKER'S %")
	for _, ing := range rf.Ingredients {
		name := ing.Name
		if ing.PrimaryFlour {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%.2f\n", name, ing.Quantity, ing.Unit, ing.BakersPercentage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, p := range rf.Phases {
		var weight float64
		for _, pi := range p.Ingredients {
			weight += pi.Quantity
		}
		b.WriteString("\n" + titleStyle.Render(phaseTitle(rf, i)) + mutedStyle.Render(fmt.Sprintf("  %.2f", bakers.Round2(weight))) + "\n")

		tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, pi := range p.Ingredients {
			label := pi.Ingredient
			if idx, ok := bakers.ParseRef(pi.Ingredient).Phase(); ok {
				label = phaseTitle(rf, idx)
			}
			fmt.Fprintf(tw, "  %s\t%.2f\t%s\n", label, pi.Quantity, pi.Unit)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		for _, msg := range res.Warnings {
			b.WriteString(warnStyle.Render("warning: "+msg) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func phaseTitle(rf recipeFile, i int) string {
	if i >= 0 && i < len(rf.Phases) && rf.Phases[i].Title != "" {
		return rf.Phases[i].Title
	}
	return fmt.Sprintf("Phase %d", i+1)
}
