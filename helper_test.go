package descent

import (
	"errors"
	"testing"

	"github.com/gonum/floats"
)

const relε = 1e-9

func a320() FlightParameters {
	return FlightParameters{Label: "A320", IAS: 250, Weight: 58000, WingArea: 122.6, CD0: 0.023, K: 0.0094, IdleThrust: 7000}
}

func a320Balance() FlightParameters {
	return FlightParameters{Label: "A320-B", IAS: 300, Weight: 64500, WingArea: 122.6, CD0: 0.023, IdleThrust: 8000}
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

func assertRel(t *testing.T, name string, got, exp float64) {
	t.Helper()
	if !floats.EqualWithinRel(got, exp, relε) {
		t.Fatalf("%s: got %.15g expected %.15g", name, got, exp)
	}
}
