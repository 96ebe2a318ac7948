package descent

import (
	"math"
	"testing"
)

func TestConstantSets(t *testing.T) {
	std := StandardConstants()
	if std.KnotsToMS != 0.514444 || std.Gravity != 9.80665 || std.SeaLevelDensity != 1.225 {
		t.Fatalf("unexpected standard constants %+v", std)
	}
	if c := LegacyIASConstants(); c.Gravity != 9.81 || c.KnotsToMS != 0.514444 {
		t.Fatalf("unexpected legacy IAS constants %+v", c)
	}
	if c := LegacyBalanceConstants(); c.Gravity != 9.8 || c.KnotsToMS != 0.5144 {
		t.Fatalf("unexpected legacy balance constants %+v", c)
	}
	for _, set := range []ConstantSet{StandardSet, LegacyIASSet, LegacyBalanceSet} {
		parsed, err := ParseConstantSet(set.String())
		if err != nil || parsed != set {
			t.Fatalf("%s did not parse back: %v", set, err)
		}
		if err := set.Constants().Validate(); err != nil {
			t.Fatalf("%s is invalid: %s", set, err)
		}
	}
	if _, err := ParseConstantSet("metric"); err == nil {
		t.Fatal("unknown set parsed")
	}
	assertPanic(t, func() {
		_ = ConstantSet(42).String()
	})
}

func TestConstantsValidate(t *testing.T) {
	for _, bad := range []float64{0, -9.81, math.NaN(), math.Inf(1)} {
		c := StandardConstants()
		c.Gravity = bad
		assertErrorIs(t, c.Validate(), ErrInvalidParameter)
		m := Model{Constants: c, Mode: ModeAPlus}
		_, err := m.Compute(a320())
		assertErrorIs(t, err, ErrInvalidParameter)
	}
}
