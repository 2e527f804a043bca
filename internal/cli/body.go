package cli

import (
	"fmt"

	"github.com/rpgo/calckit/internal/bodycomp"
	"github.com/rpgo/calckit/pkg/dateutil"
	"github.com/rpgo/calckit/pkg/locale"
	"github.com/spf13/cobra"
)

var (
	bodySex      string
	bodyWeight   float64
	bodyHeight   float64
	bodyInches   float64
	bodyAge      float64
	bodyBirth    string
	bodyFat      float64
	bodyActivity string
	bodyImperial bool
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Estimate lean body mass, daily energy and macros",
	Example: `  calckit body --sex male --weight 70 --height 175 --age 30
  calckit body --imperial --sex f --weight 140 --height 5 --inches 6 --age 40 --activity light`,
	RunE: runBody,
}

func init() {
	bodyCmd.Flags().StringVar(&bodySex, "sex", "", "male or female")
	bodyCmd.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg (pounds with --imperial)")
	bodyCmd.Flags().Float64Var(&bodyHeight, "height", 0, "Height in cm (feet with --imperial)")
	bodyCmd.Flags().Float64Var(&bodyInches, "inches", 0, "Additional inches with --imperial")
	bodyCmd.Flags().Float64Var(&bodyAge, "age", 0, "Age in years")
	bodyCmd.Flags().StringVar(&bodyBirth, "birthdate", "", "Birth date (YYYY-MM-DD) instead of --age")
	bodyCmd.MarkFlagsMutuallyExclusive("age", "birthdate")
	bodyCmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Known body fat percent (estimated when omitted)")
	bodyCmd.Flags().StringVar(&bodyActivity, "activity", "moderate", "sedentary, light, moderate, active or very_active")
	bodyCmd.Flags().BoolVar(&bodyImperial, "imperial", false, "Read weight in pounds and height in feet and inches")
	_ = bodyCmd.MarkFlagRequired("sex")
	rootCmd.AddCommand(bodyCmd)
}

func runBody(cmd *cobra.Command, _ []string) error {
	sex, err := bodycomp.ParseSex(bodySex)
	if err != nil {
		return err
	}
	age := bodyAge
	if bodyBirth != "" {
		birth, err := dateutil.ParseDate(bodyBirth)
		if err != nil {
			return err
		}
		age = float64(dateutil.Age(birth, nowFunc()))
	}
	m := bodycomp.Measurements{Sex: sex, WeightKg: bodyWeight, HeightCm: bodyHeight, AgeYears: age}
	if bodyImperial {
		m = bodycomp.FromImperial(sex, bodyWeight, bodyHeight, bodyInches, age)
	}

	lm, err := bodycomp.LeanBodyMass(m, bodyFat)
	if err != nil {
		return err
	}
	lf, err := locale.New(prefs.Locale, prefs.Currency)
	if err != nil {
		return err
	}

	mass := func(kg float64) string {
		if bodyImperial {
			return lf.Number(bodycomp.PoundsFromKg(kg), 1) + " lb"
		}
		return lf.Number(kg, 1) + " kg"
	}
	fatNote := ""
	if lm.BodyFatEstimated {
		fatNote = " (estimated)"
	}

	w := cmd.OutOrStdout()
	fmt.Fprint(w, renderTable(cmd, "Lean body mass", []string{"Formula", "Lean mass"}, [][]string{
		{"Boer", mass(lm.Boer)},
		{"James", mass(lm.James)},
		{"Hume", mass(lm.Hume)},
		{"Average", mass(lm.Average)},
		{"Body fat", lf.Percent(lm.BodyFatPercent) + fatNote},
		{"Fat mass", mass(lm.BodyFatMassKg)},
		{"Protein", fmt.Sprintf("%.0f-%.0f g/day", lm.ProteinMinGrams, lm.ProteinMaxGrams)},
	}))

	if age <= 0 {
		fmt.Fprintln(w, "Pass --age or --birthdate for energy expenditure.")
		return nil
	}
	e, err := bodycomp.DailyEnergy(m, bodyActivity)
	if err != nil {
		return err
	}
	kcal := func(v float64) string { return lf.Number(v, 0) + " kcal" }
	fmt.Fprint(w, renderTable(cmd, "Daily energy ("+e.Activity.Description+")", []string{"Measure", "Value"}, [][]string{
		{"BMR", kcal(e.BMR)},
		{"TDEE", kcal(e.TDEE)},
		{"Aggressive loss", kcal(e.AggressiveLoss)},
		{"Moderate loss", kcal(e.ModerateLoss)},
		{"Mild loss", kcal(e.MildLoss)},
		{"Mild gain", kcal(e.MildGain)},
		{"Moderate gain", kcal(e.ModerateGain)},
		{"Protein", fmt.Sprintf("%s (%.0f g)", kcal(e.Protein.Calories), e.Protein.Grams)},
		{"Carbs", fmt.Sprintf("%s (%.0f g)", kcal(e.Carbs.Calories), e.Carbs.Grams)},
		{"Fat", fmt.Sprintf("%s (%.0f g)", kcal(e.Fat.Calories), e.Fat.Grams)},
	}))
	return nil
}
