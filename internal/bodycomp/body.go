// Package bodycomp estimates lean body mass and daily energy expenditure
// from height, weight, age and sex.
package bodycomp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrUnknownSex         = errors.New("unknown sex")
	ErrUnknownActivity    = errors.New("unknown activity level")
)

const (
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

// Sex selects the formula variant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" and the single-letter forms.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// Measurements are always metric internally.
type Measurements struct {
	Sex      Sex     `json:"sex" yaml:"sex"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`
	AgeYears float64 `json:"age_years" yaml:"age_years"`
}

// FromImperial converts pounds, feet and inches.
func FromImperial(sex Sex, pounds, feet, inches, age float64) Measurements {
	return Measurements{
		Sex:      sex,
		WeightKg: pounds * kgPerPound,
		HeightCm: (feet*12 + inches) * cmPerInch,
		AgeYears: age,
	}
}

// PoundsFromKg converts a mass back for imperial display.
func PoundsFromKg(kg float64) float64 { return kg / kgPerPound }

// Validate checks the fields used by every calculation here. Age is only
// required where a formula uses it.
func (m Measurements) Validate() error {
	if m.Sex != Male && m.Sex != Female {
		return fmt.Errorf("%w: %q", ErrUnknownSex, m.Sex)
	}
	if !positive(m.WeightKg) {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidMeasurement)
	}
	if !positive(m.HeightCm) {
		return fmt.Errorf("%w: height must be positive", ErrInvalidMeasurement)
	}
	if math.IsNaN(m.AgeYears) || m.AgeYears < 0 {
		return fmt.Errorf("%w: age must not be negative", ErrInvalidMeasurement)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
