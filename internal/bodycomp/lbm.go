package bodycomp

import (
	"fmt"
	"math"
)

// LeanMass holds lean body mass in kilograms by formula.
type LeanMass struct {
	Boer    float64 `json:"boer"`
	James   float64 `json:"james"`
	Hume    float64 `json:"hume"`
	Average float64 `json:"average"`

	BodyFatPercent   float64 `json:"body_fat_percent"`
	BodyFatEstimated bool    `json:"body_fat_estimated"`
	BodyFatMassKg    float64 `json:"body_fat_mass_kg"`
	LeanPercent      float64 `json:"lean_percent"`

	ProteinMinGrams float64 `json:"protein_min_grams"`
	ProteinMaxGrams float64 `json:"protein_max_grams"`
}

// LeanBodyMass applies the Boer, James and Hume formulas. A bodyFatPercent of
// zero or less asks for an age-and-sex estimate instead.
func LeanBodyMass(m Measurements, bodyFatPercent float64) (LeanMass, error) {
	if err := m.Validate(); err != nil {
		return LeanMass{}, err
	}
	if bodyFatPercent >= 100 {
		return LeanMass{}, fmt.Errorf("%w: body fat must be below 100%%", ErrInvalidMeasurement)
	}

	w, h := m.WeightKg, m.HeightCm
	var lm LeanMass
	switch m.Sex {
	case Male:
		lm.Boer = 0.407*w + 0.267*h - 19.2
		lm.James = 1.10*w - 128*math.Pow(w/h, 2)
		lm.Hume = 0.32810*w + 0.33929*h - 29.5336
	case Female:
		lm.Boer = 0.252*w + 0.473*h - 48.3
		lm.James = 1.07*w - 148*math.Pow(w/h, 2)
		lm.Hume = 0.29569*w + 0.41813*h - 43.2933
	}
	lm.Average = (lm.Boer + lm.James + lm.Hume) / 3

	lm.BodyFatPercent = bodyFatPercent
	if bodyFatPercent <= 0 {
		lm.BodyFatPercent = EstimatedBodyFatPercent(m.Sex, m.AgeYears)
		lm.BodyFatEstimated = true
	}
	lm.BodyFatMassKg = w * lm.BodyFatPercent / 100
	lm.LeanPercent = 100 - lm.BodyFatPercent

	lm.ProteinMinGrams = math.Round(lm.Average * 1.6)
	lm.ProteinMaxGrams = math.Round(lm.Average * 2.2)
	return lm, nil
}

// EstimatedBodyFatPercent is a coarse population average by decade of age.
func EstimatedBodyFatPercent(sex Sex, age float64) float64 {
	bands := []float64{12, 15, 18, 20}
	if sex == Female {
		bands = []float64{20, 23, 26, 28}
	}
	switch {
	case age < 30:
		return bands[0]
	case age < 40:
		return bands[1]
	case age < 50:
		return bands[2]
	default:
		return bands[3]
	}
}
