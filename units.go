package descent

import (
	"fmt"
	"strings"
)

// SpeedUnit is the unit of the indicated airspeed. The zero value is knots.
type SpeedUnit uint8

const (
	// Knots is the default airspeed unit.
	Knots SpeedUnit = iota
	// MetersPerSecond is the SI airspeed unit.
	MetersPerSecond
)

func (u SpeedUnit) String() string {
	switch u {
	case Knots:
		return "kt"
	case MetersPerSecond:
		return "m/s"
	}
	panic("cannot stringify unknown speed unit")
}

// ParseSpeedUnit parses "kt" (also "kn", "knots") or "m/s" (also "ms", "mps").
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kt", "kn", "kts", "knot", "knots":
		return Knots, nil
	case "m/s", "ms", "mps":
		return MetersPerSecond, nil
	}
	return 0, fmt.Errorf("unknown speed unit %q", s)
}

// WeightUnit is the unit of the aircraft weight. The zero value is kilograms (mass).
type WeightUnit uint8

const (
	// Kilograms means the weight is given as a mass.
	Kilograms WeightUnit = iota
	// Newtons means the weight is given as a force.
	Newtons
)

func (u WeightUnit) String() string {
	switch u {
	case Kilograms:
		return "kg"
	case Newtons:
		return "N"
	}
	panic("cannot stringify unknown weight unit")
}

// ParseWeightUnit parses "kg" or "N".
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kg", "kilogram", "kilograms":
		return Kilograms, nil
	case "n", "newton", "newtons":
		return Newtons, nil
	}
	return 0, fmt.Errorf("unknown weight unit %q", s)
}

// SpeedToMS converts an airspeed to m/s.
func (c Constants) SpeedToMS(v float64, unit SpeedUnit) (float64, error) {
	if !isFinite(v) || v <= 0 {
		return 0, invalidParameter("ias", v, "must be positive and finite")
	}
	switch unit {
	case Knots:
		return v * c.KnotsToMS, nil
	case MetersPerSecond:
		return v, nil
	}
	return 0, invalidParameter("speed_unit", float64(unit), "unknown unit")
}

// SpeedFromMS converts a speed in m/s to the provided unit.
func (c Constants) SpeedFromMS(v float64, unit SpeedUnit) float64 {
	if unit == Knots {
		return v / c.KnotsToMS
	}
	return v
}

// WeightToNewtons converts a weight (mass or force) to Newtons.
func (c Constants) WeightToNewtons(w float64, unit WeightUnit) (float64, error) {
	if !isFinite(w) || w <= 0 {
		return 0, invalidParameter("weight", w, "must be positive and finite")
	}
	switch unit {
	case Kilograms:
		return w * c.Gravity, nil
	case Newtons:
		return w, nil
	}
	return 0, invalidParameter("weight_unit", float64(unit), "unknown unit")
}
