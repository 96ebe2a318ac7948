package descent

import (
	"bytes"
	"math"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

func TestSweepKeepsOrder(t *testing.T) {
	cases, err := IASRange(a320(), 150, 350, 21)
	if err != nil {
		t.Fatal(err)
	}
	cases[3].IAS = 0
	cases[7].Weight = -1
	cases[11].IdleThrust = 1e6
	var buf bytes.Buffer
	sw := NewSweeper(NewModel(ModeAPlus), 3, kitlog.NewLogfmtLogger(&buf))
	outcomes := sw.Run(cases)
	if len(outcomes) != len(cases) {
		t.Fatalf("got %d outcomes for %d cases", len(outcomes), len(cases))
	}
	for i, o := range outcomes {
		if o.Index != i || o.Params != cases[i] {
			t.Fatalf("outcome %d out of order: %+v", i, o)
		}
		switch i {
		case 3, 7:
			if o.OK() {
				t.Fatalf("case %d must fail", i)
			}
			assertErrorIs(t, o.Err, ErrInvalidParameter)
		case 11:
			if !o.OK() || o.Result.IsValidDescent {
				t.Fatalf("case %d must be an unsustainable descent", i)
			}
		default:
			exp, _ := ComputeDescentGradient(cases[i], ModeAPlus)
			if !o.OK() || o.Result != exp {
				t.Fatalf("case %d differs from a direct computation", i)
			}
		}
	}
	logs := buf.String()
	if strings.Count(logs, "level=warning") != 2 {
		t.Fatalf("expected two warnings:\n%s", logs)
	}
	if !strings.Contains(logs, "status=finished") || !strings.Contains(logs, "subsys=sweep") || !strings.Contains(logs, "failed=2") {
		t.Fatalf("missing final status:\n%s", logs)
	}
}

func TestSweepDefaults(t *testing.T) {
	sw := &Sweeper{Model: NewModel(ModeB)}
	if out := sw.Run(nil); len(out) != 0 {
		t.Fatal("empty batch must give no outcome")
	}
	out := NewSweeper(NewModel(ModeB), 0, nil).Run([]FlightParameters{a320Balance()})
	if len(out) != 1 || !out[0].OK() {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestIASRange(t *testing.T) {
	cases, err := IASRange(a320(), 200, 300, 11)
	if err != nil {
		t.Fatal(err)
	}
	if cases[0].IAS != 200 || cases[10].IAS != 300 || !floats.EqualWithinAbs(cases[5].IAS, 250, 1e-12) {
		t.Fatalf("unexpected span %v", cases)
	}
	if cases[4].Label != "A320" || cases[4].WingArea != 122.6 {
		t.Fatal("base parameters not copied")
	}
	for _, args := range []struct {
		from, to float64
		n        int
	}{{200, 300, 1}, {0, 300, 10}, {300, 200, 10}, {200, math.Inf(1), 10}} {
		_, err := IASRange(a320(), args.from, args.to, args.n)
		assertErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestTableAndSummary(t *testing.T) {
	cases, _ := IASRange(a320(), 150, 350, 5)
	cases[1].WingArea = 0
	cases[4].IdleThrust = 1e6
	outcomes := NewSweeper(NewModel(ModeAPlus), 2, nil).Run(cases)

	m := Table(outcomes)
	if r, c := m.Dims(); r != 5 || c != tableCols {
		t.Fatalf("unexpected dims %dx%d", r, c)
	}
	if m.At(1, ColIAS) != 200 || !math.IsNaN(m.At(1, ColSinGamma)) || m.At(1, ColValid) != 0 {
		t.Fatal("failed row must keep its IAS and hold NaN")
	}
	if m.At(4, ColValid) != 0 || !math.IsInf(m.At(4, ColRatio), 1) {
		t.Fatal("unsustainable row must be invalid with an infinite ratio")
	}
	if m.At(2, ColValid) != 1 || m.At(2, ColFeetPerNM) != outcomes[2].Result.FeetPerNM {
		t.Fatal("valid row not stored")
	}
	if Table(nil) != nil {
		t.Fatal("empty table must be nil")
	}

	s := Summarize(outcomes)
	if s.Count != 5 || s.Failed != 1 || s.Unsustainable != 1 || s.Valid != 3 {
		t.Fatalf("unexpected counts %+v", s)
	}
	fpn := []float64{outcomes[0].Result.FeetPerNM, outcomes[2].Result.FeetPerNM, outcomes[3].Result.FeetPerNM}
	assertRel(t, "mean", s.MeanFeetPerNM, floats.Sum(fpn)/3)
	if s.ShallowestFeetPerNM != floats.Min(fpn) || s.SteepestFeetPerNM != floats.Max(fpn) {
		t.Fatalf("unexpected extrema %+v", s)
	}
	if s.StdDevFeetPerNM <= 0 {
		t.Fatal("standard deviation must be positive")
	}
	if s := Summarize(nil); !math.IsNaN(s.MeanFeetPerNM) || s.Count != 0 {
		t.Fatal("empty summary must be NaN")
	}
}
