package descent

import (
	"fmt"
	"strings"
)

// Constants holds every physical constant and conversion factor the model uses.
// A Constants value is injected into the computations, it is never read from package state.
type Constants struct {
	KnotsToMS        float64 // m/s per knot
	Gravity          float64 // m/s^2
	SeaLevelDensity  float64 // kg/m^3, reference density of the indicated airspeed
	ScaleHeight      float64 // m, exponential atmosphere
	EnergyCorrection float64 // s^2/m^2, coefficient of the constant-IAS energy term
	FeetPerNM        float64
	MetersToFeet     float64
}

// ConstantSet names one of the built-in constant presets.
type ConstantSet uint8

const (
	// StandardSet uses the exact knot and standard gravity (9.80665 m/s^2).
	StandardSet ConstantSet = iota + 1
	// LegacyIASSet rounds g to 9.81.
	LegacyIASSet
	// LegacyBalanceSet uses 0.5144 m/s per knot and g = 9.8.
	LegacyBalanceSet
)

func (s ConstantSet) String() string {
	switch s {
	case StandardSet:
		return "standard"
	case LegacyIASSet:
		return "legacy-ias"
	case LegacyBalanceSet:
		return "legacy-balance"
	}
	panic("cannot stringify unknown constant set")
}

// Constants returns the constants of this preset.
func (s ConstantSet) Constants() Constants {
	switch s {
	case LegacyIASSet:
		return LegacyIASConstants()
	case LegacyBalanceSet:
		return LegacyBalanceConstants()
	default:
		return StandardConstants()
	}
}

// ParseConstantSet returns the preset named s.
func ParseConstantSet(s string) (ConstantSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return StandardSet, nil
	case "legacy-ias":
		return LegacyIASSet, nil
	case "legacy-balance":
		return LegacyBalanceSet, nil
	}
	return 0, fmt.Errorf("unknown constant set %q", s)
}

// StandardConstants returns the default constant set.
func StandardConstants() Constants {
	return Constants{
		KnotsToMS:        0.514444,
		Gravity:          9.80665,
		SeaLevelDensity:  1.225,
		ScaleHeight:      8435,
		EnergyCorrection: 1.225e-4,
		FeetPerNM:        6076.12,
		MetersToFeet:     3.28084,
	}
}

// LegacyIASConstants returns the standard constants with g rounded to 9.81.
func LegacyIASConstants() Constants {
	c := StandardConstants()
	c.Gravity = 9.81
	return c
}

// LegacyBalanceConstants returns the standard constants with the rounded knot factor and g = 9.8.
func LegacyBalanceConstants() Constants {
	c := StandardConstants()
	c.KnotsToMS = 0.5144
	c.Gravity = 9.8
	return c
}

// Validate returns an ErrInvalidParameter error if any constant is not strictly positive and finite.
func (c Constants) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"knots_to_ms", c.KnotsToMS},
		{"gravity", c.Gravity},
		{"sea_level_density", c.SeaLevelDensity},
		{"scale_height", c.ScaleHeight},
		{"energy_correction", c.EnergyCorrection},
		{"feet_per_nm", c.FeetPerNM},
		{"meters_to_feet", c.MetersToFeet},
	} {
		if !isFinite(f.value) || f.value <= 0 {
			return invalidParameter(f.name, f.value, "must be positive and finite")
		}
	}
	return nil
}
