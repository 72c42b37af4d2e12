// Package ui renders calculator results for the terminal.
package ui

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
)

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	blocked     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var numbers = message.NewPrinter(language.English)

const rule = "----------------------------------------"

// Price is everything shown for one priced harvest.
type Price struct {
	Crop      farm.Crop
	Weight    float64
	Selected  []farm.Mutation
	Result    farm.PriceResult
	Growth    time.Duration
	GrowthSet bool
}

func WritePrice(w io.Writer, p Price) error {
	var b strings.Builder
	b.WriteString(brightGreen.Render(p.Crop.DisplayName()) + dimGreen.Render(fmt.Sprintf("  %s", p.Crop.Category)) + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("weight      %.2f kg (%.1f%%)", p.Weight, farm.WeightPercent(p.Crop, p.Weight))) + "\n")
	if p.GrowthSet {
		b.WriteString(green.Render(fmt.Sprintf("growth      %s", p.Growth)) + "\n")
	} else {
		b.WriteString(dimGreen.Render("growth      unknown") + "\n")
	}
	if len(p.Selected) > 0 {
		labels := make([]string, 0, len(p.Selected))
		for _, m := range p.Selected {
			labels = append(labels, MutationLabel(p.Crop, m))
		}
		b.WriteString(green.Render("mutations   "+strings.Join(labels, ", ")) + "\n")
	}
	b.WriteString(border.Render(rule) + "\n")

	r := p.Result
	b.WriteString(green.Render(fmt.Sprintf("coefficient %.4f", p.Crop.PriceCoefficient)) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("weight      x%.4f", r.WeightFactor)) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("base        x%s", formatFactor(r.BaseFactor))) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("exclusive   x%s", formatFactor(r.SpecialFactor))) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("regular     x%s (1 + %s)", formatFactor(1+r.MutateFactor), formatFactor(r.MutateFactor))) + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(brightGreen.Render("total       "+FormatPrice(r.TotalPrice)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatPrice rounds to whole coins with thousands separators.
func FormatPrice(v float64) string {
	return numbers.Sprintf("%d", int64(math.Round(v)))
}

func formatFactor(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// MutationLabel shows how a mutation prices on crop: "x" for the max tiers,
// "+" for stacking ones.
func MutationLabel(crop farm.Crop, m farm.Mutation) string {
	sign := "+"
	if farm.Classify(crop, m.Name) != farm.KindRegular {
		sign = "x"
	}
	return fmt.Sprintf("%s%s %s", sign, formatFactor(m.Multiplier), m.DisplayName())
}

// Option is one row of the mutation picker.
type Option struct {
	Mutation farm.Mutation
	Selected bool
	Allowed  bool
	Blockers []string
}

func WriteOptions(w io.Writer, crop farm.Crop, opts []Option) error {
	var b strings.Builder
	b.WriteString(brightGreen.Render(crop.DisplayName()) + "\n")
	b.WriteString(border.Render(rule) + "\n")
	for _, o := range opts {
		mark := "[ ]"
		if o.Selected {
			mark = "[x]"
		}
		line := mark + " " + MutationLabel(crop, o.Mutation)
		switch {
		case o.Selected:
			b.WriteString(brightGreen.Render(line))
		case o.Allowed:
			b.WriteString(green.Render(line))
		default:
			line += " (blocked"
			if len(o.Blockers) > 0 {
				line += " by " + strings.Join(o.Blockers, ", ")
			}
			line += ")"
			b.WriteString(blocked.Render(line))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func WriteCrops(w io.Writer, crops []farm.Crop) error {
	t := table.New().
		BorderStyle(border).
		Headers("Crop", "Label", "Category", "Coefficient", "Weight (kg)", "Growth")
	for _, c := range crops {
		growth := "unknown"
		if c.GrowthKnown() {
			growth = fmt.Sprintf("%.1f %%/(s*kg)", c.GrowthSpeed/100)
		}
		t.Row(
			c.Name,
			c.Label,
			string(c.Category),
			fmt.Sprintf("%.4f", c.PriceCoefficient),
			fmt.Sprintf("%.2f-%.2f", farm.MinWeight(c), c.MaxWeight),
			growth,
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func WriteMutations(w io.Writer, muts []farm.Mutation, exclusive []string) error {
	t := table.New().
		BorderStyle(border).
		Headers("Mutation", "Label", "Color", "Multiplier", "Kind")
	for _, m := range muts {
		kind := "regular"
		mult := "+" + formatFactor(m.Multiplier)
		switch {
		case farm.IsBaseMutation(m.Name):
			kind = "base"
			mult = "x" + formatFactor(m.Multiplier)
		case slices.Contains(exclusive, m.Name):
			kind = "exclusive"
			mult = "x" + formatFactor(m.Multiplier)
		}
		if farm.IsMoonOnly(m.Name) {
			kind += ", moon"
		}
		t.Row(m.Name, m.Label, string(m.Color), mult, kind)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func WriteRecipes(w io.Writer, recipes []farm.Recipe) error {
	t := table.New().
		BorderStyle(border).
		Headers("Result", "Ingredients", "Locks out")
	for _, r := range recipes {
		var locks []string
		for _, name := range farm.IngredientClosure(r.Result) {
			if name != farm.MutationMoist {
				locks = append(locks, name)
			}
		}
		t.Row(r.Result, strings.Join(r.Ingredients, " + "), strings.Join(locks, ", "))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
