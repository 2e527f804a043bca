package bodycomp

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Activity is a named activity multiplier.
type Activity struct {
	Key         string  `json:"key"`
	Factor      float64 `json:"factor"`
	Description string  `json:"description"`
}

var activities = map[string]Activity{
	"sedentary":   {Key: "sedentary", Factor: 1.2, Description: "Little to no exercise"},
	"light":       {Key: "light", Factor: 1.375, Description: "Light exercise 1-3 days/week"},
	"moderate":    {Key: "moderate", Factor: 1.55, Description: "Moderate exercise 3-5 days/week"},
	"active":      {Key: "active", Factor: 1.725, Description: "Hard exercise 6-7 days/week"},
	"very_active": {Key: "very_active", Factor: 1.9, Description: "Very hard exercise and a physical job"},
}

// LookupActivity resolves an activity key, ignoring case and hyphens.
func LookupActivity(key string) (Activity, error) {
	k := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	a, ok := activities[k]
	if !ok {
		return Activity{}, fmt.Errorf("%w: %q", ErrUnknownActivity, key)
	}
	return a, nil
}

// Activities lists the levels from least to most active.
func Activities() []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Factor < out[j].Factor })
	return out
}

// Macro is one macronutrient's share of the daily energy.
type Macro struct {
	Calories float64 `json:"calories"`
	Grams    float64 `json:"grams"`
}

// Energy is the daily energy picture for one person.
type Energy struct {
	BMR      float64  `json:"bmr"`
	TDEE     float64  `json:"tdee"`
	Activity Activity `json:"activity"`

	MildLoss       float64 `json:"mild_loss"`
	ModerateLoss   float64 `json:"moderate_loss"`
	AggressiveLoss float64 `json:"aggressive_loss"`
	MildGain       float64 `json:"mild_gain"`
	ModerateGain   float64 `json:"moderate_gain"`

	Protein Macro `json:"protein"`
	Carbs   Macro `json:"carbs"`
	Fat     Macro `json:"fat"`
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(m Measurements) float64 {
	base := 10*m.WeightKg + 6.25*m.HeightCm - 5*m.AgeYears
	if m.Sex == Female {
		return base - 161
	}
	return base + 5
}

// DailyEnergy computes BMR, TDEE for the activity level, calorie targets in
// 250 kcal steps, and a 30/40/30 protein/carb/fat split.
func DailyEnergy(m Measurements, activity string) (Energy, error) {
	if err := m.Validate(); err != nil {
		return Energy{}, err
	}
	if m.AgeYears <= 0 {
		return Energy{}, fmt.Errorf("%w: age must be positive", ErrInvalidMeasurement)
	}
	a, err := LookupActivity(activity)
	if err != nil {
		return Energy{}, err
	}

	bmr := BMR(m)
	tdee := bmr * a.Factor
	return Energy{
		BMR:            bmr,
		TDEE:           tdee,
		Activity:       a,
		MildLoss:       tdee - 250,
		ModerateLoss:   tdee - 500,
		AggressiveLoss: tdee - 750,
		MildGain:       tdee + 250,
		ModerateGain:   tdee + 500,
		Protein:        macro(tdee, 0.30, 4),
		Carbs:          macro(tdee, 0.40, 4),
		Fat:            macro(tdee, 0.30, 9),
	}, nil
}

func macro(tdee, share, kcalPerGram float64) Macro {
	cal := tdee * share
	return Macro{Calories: math.Round(cal), Grams: math.Round(cal / kcalPerGram)}
}
