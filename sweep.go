package descent

import (
	"math"
	"runtime"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat"
)

// Outcome is the result of one case of a batch, kept at its input Index.
type Outcome struct {
	Index  int
	Params FlightParameters
	Result DescentResult
	Err    error
}

// OK returns whether the case was computed without error.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Sweeper computes batches of cases on a bounded number of goroutines.
type Sweeper struct {
	Model   Model
	Workers int // <= 0 means one per CPU
	Verbose bool
	logger  kitlog.Logger
}

// NewSweeper returns a new Sweeper. A nil logger discards everything.
func NewSweeper(m Model, workers int, logger kitlog.Logger) *Sweeper {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Sweeper{Model: m, Workers: workers, logger: kitlog.With(logger, "subsys", "sweep")}
}

// Run computes every case. The returned slice has the same length and order as cases, failed
// cases included.
func (s *Sweeper) Run(cases []FlightParameters) []Outcome {
	logger := s.logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	outcomes := make([]Outcome, len(cases))
	cpuChan := make(chan bool, workers)
	var wg sync.WaitGroup
	for i, p := range cases {
		cpuChan <- true
		wg.Add(1)
		go func(i int, p FlightParameters) {
			defer func() {
				<-cpuChan
				wg.Done()
			}()
			r, err := s.Model.Compute(p)
			outcomes[i] = Outcome{Index: i, Params: p, Result: r, Err: err}
		}(i, p)
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
			logger.Log("level", "warning", "index", o.Index, "label", o.Params.Label, "err", o.Err)
			continue
		}
		if s.Verbose {
			logger.Log("level", "info", "index", o.Index, "label", o.Params.Label, "result", o.Result)
		}
	}
	logger.Log("level", "notice", "status", "finished", "mode", s.Model.Mode, "count", len(outcomes), "failed", failed, "duration", time.Since(start))
	return outcomes
}

// IASRange returns n copies of base with their IAS evenly spaced from `from` to `to` (inclusive),
// in base's speed unit.
func IASRange(base FlightParameters, from, to float64, n int) ([]FlightParameters, error) {
	if n < 2 {
		return nil, invalidParameter("points", float64(n), "must be at least 2")
	}
	if !isFinite(from) || from <= 0 {
		return nil, invalidParameter("from", from, "must be positive and finite")
	}
	if !isFinite(to) || to <= from {
		return nil, invalidParameter("to", to, "must be finite and greater than from")
	}
	speeds := floats.Span(make([]float64, n), from, to)
	cases := make([]FlightParameters, n)
	for i, v := range speeds {
		cases[i] = base
		cases[i].IAS = v
	}
	return cases, nil
}

// Columns of the matrix returned by Table.
const (
	ColIAS = iota
	ColTotalDrag
	ColSinGamma
	ColGammaDeg
	ColFeetPerNM
	ColRatio
	ColValid
	tableCols
)

// Table returns one row per outcome. Failed rows are NaN except for the IAS; ColValid is 1 or 0.
// It returns nil for an empty batch.
func Table(outcomes []Outcome) *mat64.Dense {
	if len(outcomes) == 0 {
		return nil
	}
	m := mat64.NewDense(len(outcomes), tableCols, nil)
	for i, o := range outcomes {
		m.Set(i, ColIAS, o.Params.IAS)
		if !o.OK() {
			for j := ColTotalDrag; j < ColValid; j++ {
				m.Set(i, j, math.NaN())
			}
			continue
		}
		r := o.Result
		m.Set(i, ColTotalDrag, r.Drag.Total)
		m.Set(i, ColSinGamma, r.SinGamma)
		m.Set(i, ColGammaDeg, r.GammaDeg)
		m.Set(i, ColFeetPerNM, r.FeetPerNM)
		m.Set(i, ColRatio, r.Ratio)
		if r.IsValidDescent {
			m.Set(i, ColValid, 1)
		}
	}
	return m
}

// Summary gathers statistics of a batch. Gradient statistics only use valid descents.
type Summary struct {
	Count, Valid, Unsustainable, Failed int
	MeanFeetPerNM, StdDevFeetPerNM      float64
	ShallowestIAS, ShallowestFeetPerNM  float64
	SteepestIAS, SteepestFeetPerNM      float64
}

// Summarize returns the summary of a batch. Statistics are NaN when undefined.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Count: len(outcomes), MeanFeetPerNM: math.NaN(), StdDevFeetPerNM: math.NaN(),
		ShallowestIAS: math.NaN(), ShallowestFeetPerNM: math.NaN(), SteepestIAS: math.NaN(), SteepestFeetPerNM: math.NaN()}
	var ias, fpn []float64
	for _, o := range outcomes {
		switch {
		case !o.OK():
			s.Failed++
		case !o.Result.IsValidDescent:
			s.Unsustainable++
		default:
			s.Valid++
			ias = append(ias, o.Params.IAS)
			fpn = append(fpn, o.Result.FeetPerNM)
		}
	}
	if len(fpn) == 0 {
		return s
	}
	s.MeanFeetPerNM = stat.Mean(fpn, nil)
	if len(fpn) > 1 {
		s.StdDevFeetPerNM = stat.StdDev(fpn, nil)
	}
	minIdx, maxIdx := floats.MinIdx(fpn), floats.MaxIdx(fpn)
	s.ShallowestIAS, s.ShallowestFeetPerNM = ias[minIdx], fpn[minIdx]
	s.SteepestIAS, s.SteepestFeetPerNM = ias[maxIdx], fpn[maxIdx]
	return s
}
