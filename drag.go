package descent

import (
	"fmt"
	"math"
)

// DragBreakdown stores the dynamic pressure (Pa) and the drag components (N).
type DragBreakdown struct {
	DynamicPressure float64
	Parasite        float64
	Induced         float64
	Total           float64
}

func (d DragBreakdown) String() string {
	return fmt.Sprintf("q=%.2fPa Dp=%.2fN Di=%.2fN D=%.2fN", d.DynamicPressure, d.Parasite, d.Induced, d.Total)
}

// Drag validates p and returns its drag breakdown.
// The dynamic pressure always uses the sea-level density: the indicated airspeed is referenced to it
// whatever the altitude.
func (c Constants) Drag(p FlightParameters) (DragBreakdown, error) {
	if err := c.Validate(); err != nil {
		return DragBreakdown{}, err
	}
	iasMS, weightN, err := c.convert(p)
	if err != nil {
		return DragBreakdown{}, err
	}
	return c.drag(iasMS, weightN, p.WingArea, p.CD0, p.K)
}

func (c Constants) drag(iasMS, weightN, area, cd0, k float64) (DragBreakdown, error) {
	q := 0.5 * c.SeaLevelDensity * iasMS * iasMS
	if !isFinite(q) || q == 0 {
		return DragBreakdown{}, degenerateInput("dynamic_pressure", q, "must be non-zero and finite")
	}
	qS := q * area
	if !isFinite(qS) || qS == 0 {
		return DragBreakdown{}, degenerateInput("dynamic_pressure", q, "times wing area is zero or not finite")
	}
	parasite := qS * cd0
	induced := k * weightN * weightN / qS
	total := parasite + induced
	if !isFinite(total) {
		return DragBreakdown{}, degenerateInput("total_drag", total, "is not finite")
	}
	return DragBreakdown{DynamicPressure: q, Parasite: parasite, Induced: induced, Total: total}, nil
}

// MinimumDragSpeed returns the indicated airspeed, in the unit of p.SpeedUnit, at which the parasite and
// induced drag are equal (the bottom of the drag curve). p.IAS must be valid but is otherwise ignored.
func (c Constants) MinimumDragSpeed(p FlightParameters) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	weightN, err := c.WeightToNewtons(p.Weight, p.WeightUnit)
	if err != nil {
		return 0, err
	}
	if p.CD0 == 0 || p.K == 0 {
		return 0, degenerateInput("cd0", p.CD0, "and k must both be non-zero for a drag minimum")
	}
	qmd := weightN / p.WingArea * math.Sqrt(p.K/p.CD0)
	v := math.Sqrt(2 * qmd / c.SeaLevelDensity)
	if !isFinite(v) {
		return 0, degenerateInput("minimum_drag_speed", v, "is not finite")
	}
	return c.SpeedFromMS(v, p.SpeedUnit), nil
}
