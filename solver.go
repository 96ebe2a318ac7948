package descent

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the force balance formulation. The zero value is not a mode: it must be chosen.
type Mode uint8

const (
	// ModeAPlus divides the net drag ratio by 1 + c·V²/g (the constant-IAS energy correction).
	ModeAPlus Mode = iota + 1
	// ModeAMinus divides the net drag ratio by 1 - c·V²/g.
	ModeAMinus
	// ModeB uses the net drag ratio directly as the descent sine.
	ModeB
)

func (m Mode) String() string {
	switch m {
	case ModeAPlus:
		return "A+"
	case ModeAMinus:
		return "A-"
	case ModeB:
		return "B"
	}
	panic("cannot stringify unknown mode")
}

// ParseMode parses "A+", "A-" or "B" (also "a-plus", "a-minus", "simple").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a+", "a-plus", "aplus", "corrected":
		return ModeAPlus, nil
	case "a-", "a-minus", "aminus":
		return ModeAMinus, nil
	case "b", "simple":
		return ModeB, nil
	}
	return 0, fmt.Errorf("unknown mode %q (expected A+, A- or B)", s)
}

// energySign returns the sign of the energy correction term, zero for ModeB.
func (m Mode) energySign() (float64, error) {
	switch m {
	case ModeAPlus:
		return 1, nil
	case ModeAMinus:
		return -1, nil
	case ModeB:
		return 0, nil
	}
	return 0, invalidParameter("mode", float64(m), "unknown or unset mode")
}

// Solution is the output of the flight path angle solver. Angles are positive when descending.
type Solution struct {
	NetDragRatio float64 // (D - T)/W
	EnergyFactor float64 // correction denominator, 1 without correction
	DescentSine  float64 // clamped to [0, 1]
	Gradient     float64 // descent gradient: the raw net drag ratio in ModeB, DescentSine otherwise
	DescentAngle float64 // radians
	Clamped      bool    // the raw sine was beyond 1
	Valid        bool    // false when the idle thrust is at least the total drag
}

// Solve converts a drag breakdown and idle thrust into a descent angle.
// iasMS is only used by the energy correction of the A modes.
func (c Constants) Solve(mode Mode, drag DragBreakdown, idleThrust, weightN, iasMS float64) (Solution, error) {
	sign, err := mode.energySign()
	if err != nil {
		return Solution{}, err
	}
	if !isFinite(weightN) || weightN <= 0 {
		return Solution{}, invalidParameter("weight", weightN, "must be positive and finite")
	}
	if !isFinite(idleThrust) || idleThrust < 0 {
		return Solution{}, invalidParameter("idle_thrust", idleThrust, "must be non-negative and finite")
	}
	if !isFinite(drag.Total) || drag.Total < 0 {
		return Solution{}, degenerateInput("total_drag", drag.Total, "must be non-negative and finite")
	}
	sol := Solution{NetDragRatio: (drag.Total - idleThrust) / weightN, EnergyFactor: 1}
	if !isFinite(sol.NetDragRatio) {
		return Solution{}, degenerateInput("net_drag_ratio", sol.NetDragRatio, "is not finite")
	}
	if sign != 0 {
		sol.EnergyFactor = 1 + sign*c.EnergyCorrection*iasMS*iasMS/c.Gravity
	}

	if sol.NetDragRatio <= 0 {
		// Idle thrust balances or exceeds the drag: no stable idle descent, whatever the correction.
		return sol, nil
	}
	if !isFinite(sol.EnergyFactor) || sol.EnergyFactor <= 0 {
		return Solution{}, degenerateInput("energy_factor", sol.EnergyFactor, "must be positive")
	}
	sol.Valid = true
	if mode == ModeB {
		sol.Gradient = sol.NetDragRatio
		if sol.NetDragRatio >= 1 {
			sol.DescentSine = 1
			sol.DescentAngle = math.Pi / 2
			sol.Clamped = sol.NetDragRatio > 1
			return sol, nil
		}
		sol.DescentSine = sol.NetDragRatio
		sol.DescentAngle = math.Asin(sol.DescentSine)
		return sol, nil
	}
	raw := sol.NetDragRatio / sol.EnergyFactor
	sol.DescentSine = clamp(raw, -1, 1)
	sol.Clamped = sol.DescentSine != raw
	sol.DescentAngle = math.Asin(sol.DescentSine)
	sol.Gradient = sol.DescentSine
	return sol, nil
}
