package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydration-helper/internal/model"
)

func TestCompute_KnownProfiles(t *testing.T) {
	tests := []struct {
		name string
		m    model.Measurements
		want int
	}{
		{
			name: "moderately active adult",
			m:    model.Measurements{Age: 30, ActivityLevel: 50, HeightFeet: 5, HeightInches: 7, WeightLb: 154},
			want: 3,
		},
		{
			name: "tall sedentary adult over thirty",
			m:    model.Measurements{Age: 35, ActivityLevel: 0, HeightFeet: 6, HeightInches: 3, WeightLb: 200},
			want: 3,
		},
		{
			name: "heavy and highly active",
			m:    model.Measurements{Age: 25, ActivityLevel: 100, HeightFeet: 6, HeightInches: 2, WeightLb: 250},
			want: 8,
		},
		{
			name: "light older adult",
			m:    model.Measurements{Age: 60, ActivityLevel: 10, HeightFeet: 4, HeightInches: 11, WeightLb: 100},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.m))
		})
	}
}

func TestCompute_ZeroWeight(t *testing.T) {
	// With zero weight the baseline is zero and every factor multiplies
	// into zero, whatever the rest of the profile looks like.
	profiles := []model.Measurements{
		{},
		{Age: 80, ActivityLevel: 100, HeightFeet: 7},
		{Age: 1, ActivityLevel: 0, HeightFeet: 4, HeightInches: 2},
	}
	for _, m := range profiles {
		assert.Equal(t, 0, Compute(m))
	}
}

func TestExplain_Intermediates(t *testing.T) {
	b := Explain(model.Measurements{Age: 30, ActivityLevel: 50, HeightFeet: 5, HeightInches: 7, WeightLb: 154})

	assert.InDelta(t, 170.18, b.HeightCm, 1e-9)
	assert.InDelta(t, 69.853168, b.WeightKg, 1e-9)
	assert.InDelta(t, 2.305154544, b.BaseLiters, 1e-9)
	assert.Equal(t, 1.0, b.AgeFactor)
	assert.Equal(t, 1.5, b.ActivityFactor)
	assert.Equal(t, 1.0, b.HeightFactor)
	assert.InDelta(t, 3.457731816, b.RawLiters, 1e-9)
	assert.Equal(t, 3, b.Liters)
}

func TestExplain_AgeThreshold(t *testing.T) {
	base := model.Measurements{ActivityLevel: 50, HeightFeet: 5, HeightInches: 7, WeightLb: 154}

	at := base
	at.Age = 30
	over := base
	over.Age = 31

	assert.Equal(t, 1.0, Explain(at).AgeFactor, "exactly 30 takes no reduction")
	assert.Equal(t, 0.95, Explain(over).AgeFactor)
	assert.Less(t, Explain(over).RawLiters, Explain(at).RawLiters)
}

func TestExplain_HeightThreshold(t *testing.T) {
	// 5'10" is 177.80 cm and 5'11" is 180.34 cm, so the pair brackets the
	// 180 cm boundary as tightly as whole-inch heights allow.
	base := model.Measurements{Age: 30, ActivityLevel: 0, WeightLb: 154, HeightFeet: 5}

	under := base
	under.HeightInches = 10
	over := base
	over.HeightInches = 11

	require.InDelta(t, 177.80, Explain(under).HeightCm, 1e-9)
	require.InDelta(t, 180.34, Explain(over).HeightCm, 1e-9)
	assert.Equal(t, 1.0, Explain(under).HeightFactor)
	assert.Equal(t, 1.1, Explain(over).HeightFactor)
}

func TestCompute_MonotonicInWeight(t *testing.T) {
	m := model.Measurements{Age: 40, ActivityLevel: 30, HeightFeet: 5, HeightInches: 9}
	prev := -1
	for lb := 0.0; lb <= 400; lb += 5 {
		m.WeightLb = lb
		got := Compute(m)
		require.GreaterOrEqual(t, got, prev, "weight %v lb", lb)
		prev = got
	}
}

func TestCompute_MonotonicInActivity(t *testing.T) {
	m := model.Measurements{Age: 22, HeightFeet: 6, HeightInches: 0, WeightLb: 180}
	prev := -1
	for lvl := 0; lvl <= 100; lvl++ {
		m.ActivityLevel = lvl
		got := Compute(m)
		require.GreaterOrEqual(t, got, prev, "activity %d", lvl)
		prev = got
	}
}

func TestCompute_Deterministic(t *testing.T) {
	m := model.Measurements{Age: 33, ActivityLevel: 75, HeightFeet: 5, HeightInches: 11, WeightLb: 190.5}
	first := Explain(m)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Explain(m))
	}
}
