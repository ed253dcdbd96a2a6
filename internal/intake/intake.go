// Package intake computes the recommended daily water intake from a set of
// biometric measurements. The computation is pure and total: the same
// Measurements always produce the same result and no input can make it fail.
package intake

import (
	"math"

	"hydration-helper/internal/model"
)

// Unit conversions.
const (
	cmPerFoot  = 30.48
	cmPerInch  = 2.54
	kgPerPound = 0.453592
)

// Baseline and adjustment factors. The order factors apply in is fixed
// (age, then activity, then height) and rounding happens exactly once on
// the final running value.
const (
	litersPerKg = 0.033

	ageThresholdYears = 30
	ageFactor         = 0.95

	activityPercentStep = 0.01

	tallThresholdCm = 180.0
	tallFactor      = 1.1
)

// Compute returns the recommended daily intake in whole liters.
func Compute(m model.Measurements) int {
	return Explain(m).Liters
}

// Explain runs the same computation as Compute but keeps every intermediate,
// so callers can show the derivation instead of a bare number.
func Explain(m model.Measurements) model.Breakdown {
	b := model.Breakdown{
		HeightCm:       float64(m.HeightFeet)*cmPerFoot + float64(m.HeightInches)*cmPerInch,
		WeightKg:       m.WeightLb * kgPerPound,
		AgeFactor:      1,
		ActivityFactor: 1 + float64(m.ActivityLevel)*activityPercentStep,
		HeightFactor:   1,
	}
	b.BaseLiters = b.WeightKg * litersPerKg

	// Threshold conditions are strict: exactly 30 years or exactly 180 cm
	// take no adjustment.
	if m.Age > ageThresholdYears {
		b.AgeFactor = ageFactor
	}
	if b.HeightCm > tallThresholdCm {
		b.HeightFactor = tallFactor
	}

	b.RawLiters = b.BaseLiters * b.AgeFactor * b.ActivityFactor * b.HeightFactor
	b.Liters = int(math.Round(b.RawLiters))
	return b
}
