package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Fill in a projection with a terminal form",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// projectionForm holds the raw text of each form field.
type projectionForm struct {
	Name        string
	Principal   string
	Monthly     string
	Rate        string
	Years       string
	Inflation   string
	Growth      string
	Compounding int
}

func newProjectionForm() *projectionForm {
	return &projectionForm{
		Name:        "Projection",
		Principal:   "10000",
		Monthly:     "0",
		Rate:        "7",
		Years:       "10",
		Inflation:   strconv.FormatFloat(prefs.DefaultInflationPercent, 'f', -1, 64),
		Growth:      "0",
		Compounding: prefs.DefaultCompounding,
	}
}

func nonNegative(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func positiveNumber(s string) error {
	if err := nonNegative(s); err != nil {
		return err
	}
	if v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64); v == 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func (p *projectionForm) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&p.Name),
			huh.NewInput().Title("Starting balance").Value(&p.Principal).Validate(nonNegative),
			huh.NewInput().Title("Monthly contribution").Value(&p.Monthly).Validate(nonNegative),
			huh.NewInput().Title("Annual rate (%)").Value(&p.Rate).Validate(nonNegative),
			huh.NewInput().Title("Years").Value(&p.Years).Validate(positiveNumber),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Compounding").
				Options(
					huh.NewOption("Annually", 1),
					huh.NewOption("Semi-annually", 2),
					huh.NewOption("Quarterly", 4),
					huh.NewOption("Monthly", 12),
					huh.NewOption("Daily", 365),
				).
				Value(&p.Compounding),
			huh.NewInput().Title("Inflation (%)").Value(&p.Inflation).Validate(nonNegative),
			huh.NewInput().Title("Yearly contribution increase (%)").Value(&p.Growth).Validate(nonNegative),
		),
	)
}

// input converts the form text into a projection.
func (p *projectionForm) input() (domain.ProjectionInput, error) {
	in := domain.ProjectionInput{CompoundingPeriodsPerYear: p.Compounding}
	fields := []struct {
		label string
		raw   string
		dst   *float64
	}{
		{"starting balance", p.Principal, &in.Principal},
		{"monthly contribution", p.Monthly, &in.PeriodicContribution},
		{"annual rate", p.Rate, &in.AnnualRatePercent},
		{"years", p.Years, &in.Years},
		{"inflation", p.Inflation, &in.InflationRatePercent},
		{"contribution increase", p.Growth, &in.ContributionGrowthRatePercent},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
		if err != nil {
			return domain.ProjectionInput{}, fmt.Errorf("%s: %q is not a number", f.label, f.raw)
		}
		*f.dst = v
	}
	return in, nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	p := newProjectionForm()
	if err := p.form().Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	in, err := p.input()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Projection"
	}
	file := newScenario(name)
	file.Projections = []domain.NamedProjection{{Name: name, ProjectionInput: in}}
	return runAndPrint(cmd, file)
}
