package main

import (
	"github.com/spf13/cobra"

	"hydration-helper/internal/model"
)

// measurementFlags binds the biometric flags shared by calc, ics and remind.
// Defaults describe an average adult so every subcommand works bare.
type measurementFlags struct {
	age      int
	activity int
	heightFt int
	heightIn int
	weightLb float64
}

func (f *measurementFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.age, "age", 30, "Age in years")
	cmd.Flags().IntVar(&f.activity, "activity", 50, "Activity level (0-100)")
	cmd.Flags().IntVar(&f.heightFt, "height-ft", 5, "Height, feet part")
	cmd.Flags().IntVar(&f.heightIn, "height-in", 7, "Height, inches part")
	cmd.Flags().Float64Var(&f.weightLb, "weight", 154, "Weight in pounds")
}

// measurements converts the flag values to Measurements, clamping values
// outside the supported ranges the same way the web form does.
func (f *measurementFlags) measurements() model.Measurements {
	m := model.Measurements{
		Age:           f.age,
		ActivityLevel: f.activity,
		HeightFeet:    f.heightFt,
		HeightInches:  f.heightIn,
		WeightLb:      f.weightLb,
	}
	if m.Age < 0 {
		m.Age = 0
	}
	if m.ActivityLevel < 0 {
		m.ActivityLevel = 0
	}
	if m.ActivityLevel > 100 {
		m.ActivityLevel = 100
	}
	if m.HeightFeet < 0 {
		m.HeightFeet = 0
	}
	if m.HeightInches < 0 {
		m.HeightInches = 0
	}
	if m.WeightLb < 0 {
		m.WeightLb = 0
	}
	return m
}
