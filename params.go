package descent

import (
	"fmt"
	"math"
)

// FlightParameters defines one descent case.
type FlightParameters struct {
	Label      string
	IAS        float64    // indicated airspeed
	SpeedUnit  SpeedUnit  // unit of IAS (knots by default)
	Weight     float64    // aircraft weight
	WeightUnit WeightUnit // unit of Weight (kg by default)
	WingArea   float64    // reference wing area in m^2
	CD0        float64    // zero-lift drag coefficient
	K          float64    // induced drag factor
	IdleThrust float64    // in Newtons
	Altitude   float64    // in meters, only used for the true airspeed
}

func (p FlightParameters) String() string {
	return fmt.Sprintf("%s IAS=%g%s W=%g%s S=%gm² CD0=%g k=%g T=%gN h=%gm", p.Label, p.IAS, p.SpeedUnit, p.Weight, p.WeightUnit, p.WingArea, p.CD0, p.K, p.IdleThrust, p.Altitude)
}

// Validate checks the domain of every field and the units. It does not depend on any constant.
func (p FlightParameters) Validate() error {
	if !isFinite(p.IAS) || p.IAS <= 0 {
		return invalidParameter("ias", p.IAS, "must be positive and finite")
	}
	if !isFinite(p.Weight) || p.Weight <= 0 {
		return invalidParameter("weight", p.Weight, "must be positive and finite")
	}
	if p.SpeedUnit > MetersPerSecond {
		return invalidParameter("speed_unit", float64(p.SpeedUnit), "unknown unit")
	}
	if p.WeightUnit > Newtons {
		return invalidParameter("weight_unit", float64(p.WeightUnit), "unknown unit")
	}
	if !isFinite(p.WingArea) || p.WingArea <= 0 {
		return invalidParameter("wing_area", p.WingArea, "must be positive and finite")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"cd0", p.CD0},
		{"k", p.K},
		{"idle_thrust", p.IdleThrust},
		{"altitude", p.Altitude},
	} {
		if !isFinite(f.value) || f.value < 0 {
			return invalidParameter(f.name, f.value, "must be non-negative and finite")
		}
	}
	return nil
}

// convert validates p and returns its airspeed in m/s and weight in Newtons.
func (c Constants) convert(p FlightParameters) (iasMS, weightN float64, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if iasMS, err = c.SpeedToMS(p.IAS, p.SpeedUnit); err != nil {
		return
	}
	weightN, err = c.WeightToNewtons(p.Weight, p.WeightUnit)
	return
}

// AspectRatio returns span²/area.
func AspectRatio(span, area float64) (float64, error) {
	if !isFinite(span) || span <= 0 {
		return 0, invalidParameter("span", span, "must be positive and finite")
	}
	if !isFinite(area) || area <= 0 {
		return 0, invalidParameter("wing_area", area, "must be positive and finite")
	}
	return span * span / area, nil
}

// InducedDragFactor returns k = 1/(π·AR·e) from the wing span (m), area (m^2) and Oswald efficiency factor.
func InducedDragFactor(span, area, oswald float64) (float64, error) {
	ar, err := AspectRatio(span, area)
	if err != nil {
		return 0, err
	}
	if !isFinite(oswald) || oswald <= 0 {
		return 0, invalidParameter("oswald", oswald, "must be positive and finite")
	}
	return 1 / (math.Pi * ar * oswald), nil
}
