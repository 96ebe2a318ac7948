package descent

import (
	"fmt"
	"math"
	"strings"
)

// Atmosphere selects the air density model. The two models are never mixed within a computation.
type Atmosphere uint8

const (
	// SeaLevel uses the sea-level density at every altitude. This is the zero value.
	SeaLevel Atmosphere = iota
	// Exponential uses ρ(h) = ρ0·exp(-h/H).
	Exponential
)

func (a Atmosphere) String() string {
	switch a {
	case SeaLevel:
		return "sea-level"
	case Exponential:
		return "exponential"
	}
	panic("cannot stringify unknown atmosphere")
}

// ParseAtmosphere parses "sea-level" or "exponential".
func ParseAtmosphere(s string) (Atmosphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sea-level", "sealevel", "constant":
		return SeaLevel, nil
	case "exponential", "exp":
		return Exponential, nil
	}
	return 0, fmt.Errorf("unknown atmosphere %q", s)
}

// Density returns the air density (kg/m^3) at the provided altitude (m).
func (c Constants) Density(atm Atmosphere, altitude float64) (float64, error) {
	if !isFinite(altitude) || altitude < 0 {
		return 0, invalidParameter("altitude", altitude, "must be non-negative and finite")
	}
	switch atm {
	case SeaLevel:
		return c.SeaLevelDensity, nil
	case Exponential:
		ρ := c.SeaLevelDensity * math.Exp(-altitude/c.ScaleHeight)
		if ρ <= 0 {
			return 0, degenerateInput("density", ρ, "underflowed at this altitude")
		}
		return ρ, nil
	}
	return 0, invalidParameter("atmosphere", float64(atm), "unknown model")
}

// TrueAirspeed returns the true airspeed (m/s) matching the indicated airspeed (m/s) at this altitude.
// The dynamic pressure ½·ρ·TAS² is equal to ½·ρ0·IAS² by construction.
func (c Constants) TrueAirspeed(atm Atmosphere, iasMS, altitude float64) (float64, error) {
	ρ, err := c.Density(atm, altitude)
	if err != nil {
		return 0, err
	}
	return iasMS * math.Sqrt(c.SeaLevelDensity/ρ), nil
}
