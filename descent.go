// Package descent computes the descent gradient of a fixed-wing aircraft flying a constant indicated
// airspeed at idle thrust.
//
// The computation converts the airspeed and weight to SI units, evaluates the dynamic pressure and the
// parasite and induced drag, and inverts the force balance into a flight path angle. Three force balance
// modes are available (see Mode) and must be selected explicitly.
package descent

import (
	"fmt"
	"math"
)

// DescentResult is the full output of one computation.
// SinGamma and GammaDeg follow the flight path convention (negative when descending) whereas
// DescentGradient, DescentAngleDeg, FeetPerNM and VerticalSpeed are positive when descending.
// In ModeB the DescentGradient and Ratio keep the unclamped (D-T)/W, so they may exceed 1 when
// the angle is clamped to 90°.
type DescentResult struct {
	Mode            Mode
	Drag            DragBreakdown
	IASms           float64 // indicated airspeed in m/s
	WeightN         float64 // weight in Newtons
	Density         float64 // kg/m^3 at the case altitude
	TrueAirspeed    float64 // m/s
	NetDragRatio    float64 // (D - T)/W
	EnergyFactor    float64 // correction denominator, 1 for ModeB
	SinGamma        float64
	GammaDeg        float64
	DescentGradient float64 // sine of the descent angle, unclamped (D-T)/W in ModeB
	DescentAngleDeg float64
	FeetPerNM       float64 // DescentGradient × feet per nautical mile, a shallow angle approximation
	Ratio           float64 // horizontal:vertical, +Inf when unsustainable
	VerticalSpeed   float64 // ft/min
	Clamped         bool
	IsValidDescent  bool
}

func (r DescentResult) String() string {
	if !r.IsValidDescent {
		return fmt.Sprintf("[%s] unsustainable idle descent (D=%.0fN, (D-T)/W=%.6f)", r.Mode, r.Drag.Total, r.NetDragRatio)
	}
	return fmt.Sprintf("[%s] sin(γ)=%.6f γ=%.3f° %.0fft/nm %s", r.Mode, r.SinGamma, r.GammaDeg, r.FeetPerNM, FormatRatio(r))
}

// Model bundles the configuration of a computation: constants, atmosphere and force balance mode.
type Model struct {
	Constants  Constants
	Atmosphere Atmosphere
	Mode       Mode
}

// NewModel returns a model using the standard constants and the sea-level atmosphere.
func NewModel(mode Mode) Model {
	return Model{Constants: StandardConstants(), Atmosphere: SeaLevel, Mode: mode}
}

// ComputeDescentGradient computes the descent gradient of p with the standard constants.
func ComputeDescentGradient(p FlightParameters, mode Mode) (DescentResult, error) {
	return NewModel(mode).Compute(p)
}

// Compute validates p and returns its descent gradient.
// An idle thrust at least equal to the drag is not an error: the result has IsValidDescent set to false.
func (m Model) Compute(p FlightParameters) (DescentResult, error) {
	c := m.Constants
	if err := c.Validate(); err != nil {
		return DescentResult{}, err
	}
	if _, err := m.Mode.energySign(); err != nil {
		return DescentResult{}, err
	}
	iasMS, weightN, err := c.convert(p)
	if err != nil {
		return DescentResult{}, err
	}
	ρ, err := c.Density(m.Atmosphere, p.Altitude)
	if err != nil {
		return DescentResult{}, err
	}
	drag, err := c.drag(iasMS, weightN, p.WingArea, p.CD0, p.K)
	if err != nil {
		return DescentResult{}, err
	}
	sol, err := c.Solve(m.Mode, drag, p.IdleThrust, weightN, iasMS)
	if err != nil {
		return DescentResult{}, err
	}
	tas := iasMS * math.Sqrt(c.SeaLevelDensity/ρ)

	r := DescentResult{
		Mode:            m.Mode,
		Drag:            drag,
		IASms:           iasMS,
		WeightN:         weightN,
		Density:         ρ,
		TrueAirspeed:    tas,
		NetDragRatio:    sol.NetDragRatio,
		EnergyFactor:    sol.EnergyFactor,
		SinGamma:        negate(sol.DescentSine),
		GammaDeg:        negate(Rad2deg(sol.DescentAngle)),
		DescentGradient: sol.Gradient,
		DescentAngleDeg: Rad2deg(sol.DescentAngle),
		FeetPerNM:       sol.DescentSine * c.FeetPerNM,
		Ratio:           math.Inf(1),
		VerticalSpeed:   tas * sol.DescentSine * c.MetersToFeet * 60,
		Clamped:         sol.Clamped,
		IsValidDescent:  sol.Valid,
	}
	if sol.Valid && sol.Gradient > 0 {
		r.Ratio = 1 / sol.Gradient
	}
	return r, nil
}
