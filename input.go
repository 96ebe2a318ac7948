package descent

import (
	"strconv"
	"strings"
)

// Field names understood by ParseFlightParameters and the scenario files.
const (
	FieldLabel      = "label"
	FieldIAS        = "ias"
	FieldSpeedUnit  = "speed_unit"
	FieldWeight     = "weight"
	FieldWeightUnit = "weight_unit"
	FieldWingArea   = "wing_area"
	FieldCD0        = "cd0"
	FieldK          = "k"
	FieldSpan       = "span"
	FieldOswald     = "oswald"
	FieldIdleThrust = "idle_thrust"
	FieldAltitude   = "altitude"
)

// Prompt describes one value asked by an interactive front end.
type Prompt struct {
	Field    string
	Text     string
	Optional bool
}

// Prompts lists the numeric fields in the order an interactive session asks for them.
var Prompts = []Prompt{
	{FieldIAS, "IAS (kt)", false},
	{FieldWeight, "Aircraft weight (kg)", false},
	{FieldWingArea, "Wing area (m²)", false},
	{FieldCD0, "Zero-lift drag coefficient CD0", false},
	{FieldK, "Induced drag factor k (empty to skip)", true},
	{FieldIdleThrust, "Idle thrust (N)", false},
	{FieldAltitude, "Altitude (m, empty for sea level)", true},
}

// ParseFloat parses one numeric field. Non-numeric text is an ErrInvalidInput error; no range check is done.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, invalidInput(field, s, "is not a number")
	}
	return v, nil
}

// ParseFlightParameters parses and validates a set of textual fields (see the Field constants).
// Missing optional fields (k, altitude, units, label) keep their zero value; k is derived from the span and
// Oswald factor when both are given instead. One of the two alone is an ErrInvalidInput error.
func ParseFlightParameters(fields map[string]string) (FlightParameters, error) {
	var p FlightParameters
	p.Label = strings.TrimSpace(fields[FieldLabel])
	var err error
	if p.SpeedUnit, err = ParseSpeedUnit(fields[FieldSpeedUnit]); err != nil {
		return p, invalidInput(FieldSpeedUnit, fields[FieldSpeedUnit], "is not a speed unit")
	}
	if p.WeightUnit, err = ParseWeightUnit(fields[FieldWeightUnit]); err != nil {
		return p, invalidInput(FieldWeightUnit, fields[FieldWeightUnit], "is not a weight unit")
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{FieldIAS, &p.IAS},
		{FieldWeight, &p.Weight},
		{FieldWingArea, &p.WingArea},
		{FieldCD0, &p.CD0},
		{FieldIdleThrust, &p.IdleThrust},
	} {
		raw, ok := fields[f.name]
		if !ok || strings.TrimSpace(raw) == "" {
			return p, invalidInput(f.name, raw, "is required")
		}
		if *f.dst, err = ParseFloat(f.name, raw); err != nil {
			return p, err
		}
	}
	if raw := strings.TrimSpace(fields[FieldAltitude]); raw != "" {
		if p.Altitude, err = ParseFloat(FieldAltitude, raw); err != nil {
			return p, err
		}
	}
	if raw := strings.TrimSpace(fields[FieldK]); raw != "" {
		if p.K, err = ParseFloat(FieldK, raw); err != nil {
			return p, err
		}
	} else if span, oswald := strings.TrimSpace(fields[FieldSpan]), strings.TrimSpace(fields[FieldOswald]); span != "" || oswald != "" {
		if span == "" {
			return p, invalidInput(FieldSpan, span, "is required with an Oswald factor")
		}
		if oswald == "" {
			return p, invalidInput(FieldOswald, oswald, "is required with a wing span")
		}
		b, err := ParseFloat(FieldSpan, span)
		if err != nil {
			return p, err
		}
		e, err := ParseFloat(FieldOswald, oswald)
		if err != nil {
			return p, err
		}
		if p.K, err = InducedDragFactor(b, p.WingArea, e); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}
