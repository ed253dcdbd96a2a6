package model

// Measurements is one biometric snapshot as supplied by a caller (web form,
// JSON API, or CLI flags). Values are read once per computation and never
// stored; there is no user identity attached to them.
type Measurements struct {
	// Age in whole years. Callers clamp to >= 0 before constructing
	// a Measurements (the web form enforces >= 1).
	Age int

	// ActivityLevel is a 0-100 percentage used as an activity proxy.
	ActivityLevel int

	// Height in imperial units. Inches are conventionally < 12 but this
	// is not enforced; the computation only sees the combined height.
	HeightFeet   int
	HeightInches int

	// WeightLb is body weight in pounds.
	WeightLb float64
}

// Breakdown carries every intermediate of an intake computation alongside
// the final recommendation. Liters is the only value a caller strictly
// needs; the rest exists so surfaces can show how the number came to be.
type Breakdown struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`

	// BaseLiters is the weight-derived baseline before any factor applies.
	BaseLiters float64 `json:"base_liters"`

	// Multiplicative factors, each 1 when its condition does not hold.
	AgeFactor      float64 `json:"age_factor"`
	ActivityFactor float64 `json:"activity_factor"`
	HeightFactor   float64 `json:"height_factor"`

	// RawLiters is the unrounded product of base and factors.
	RawLiters float64 `json:"raw_liters"`

	// Liters is RawLiters rounded once, half away from zero.
	Liters int `json:"liters"`
}

// ReminderEvent is the fixed-shape daily reminder derived from a liter
// target. It is constructed fresh for every encode or export and discarded
// afterwards.
type ReminderEvent struct {
	Summary     string
	Description string

	// RRule is the iCalendar recurrence rule, e.g. "FREQ=DAILY".
	RRule string

	// StartClock is the window start as HHMM (24h), e.g. "0900".
	StartClock string

	// Duration is the drinking window length as an RFC 5545 duration,
	// e.g. "PT12H".
	Duration string
}
