package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	descent "github.com/LongQin0121/Descent-Gradient"
	kitlog "github.com/go-kit/kit/log"
)

var (
	scenario, prefix, outdir, modeStr string
	from, to                          float64
	points, numCPUs                   int
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file, the first case is swept")
	flag.StringVar(&prefix, "prefix", "sweep", "output file prefix")
	flag.StringVar(&outdir, "outdir", ".", "output directory")
	flag.StringVar(&modeStr, "mode", "", "force balance mode: A+, A- or B (overrides the configuration)")
	flag.Float64Var(&from, "from", 150, "first IAS of the sweep (kt)")
	flag.Float64Var(&to, "to", 350, "last IAS of the sweep (kt)")
	flag.IntVar(&points, "points", 201, "number of points of the sweep")
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs to use (set to 0 for max CPUs)")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	conf, err := descent.DefaultConfig()
	if err != nil {
		log.Fatalf("[conf] %s", err)
	}
	model := conf.Model()

	// A320-like default case.
	base := descent.FlightParameters{Label: prefix, IAS: 250, Weight: 58000, WingArea: 122.6, CD0: 0.023, K: 0.0094, IdleThrust: 7000}
	var scenarioMode descent.Mode
	if scenario != "" {
		sc, err := descent.LoadScenario(scenario)
		if err != nil {
			log.Fatalf("[conf] %s", err)
		}
		base = sc.Cases[0]
		scenarioMode = sc.Mode
		if sc.Sweep != nil {
			from, to, points = sc.Sweep.From, sc.Sweep.To, sc.Sweep.Points
		}
	}
	mode, source, err := conf.ResolveMode(modeStr, scenarioMode)
	if err != nil {
		log.Fatal(err)
	}
	model.Mode = mode
	if source == "builtin default" {
		log.Printf("[info] no mode configured, using %s (set -mode or model.mode in conf.toml)", mode)
	}
	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}
	if conf.Workers > 0 && conf.Workers < numCPUs {
		numCPUs = conf.Workers
	}
	log.Printf("[info] sweeping %s from %.1f to %.1f %s (%d points, mode %s from the %s) on %d CPUs", base.Label, from, to, base.SpeedUnit, points, model.Mode, source, numCPUs)

	cases, err := descent.IASRange(base, from, to, points)
	if err != nil {
		log.Fatal(err)
	}
	outcomes := descent.NewSweeper(model, numCPUs, logger).Run(cases)

	datFile := filepath.Join(outdir, fmt.Sprintf("%s-gradient.dat", prefix))
	f, err := os.Create(datFile)
	if err != nil {
		log.Fatal(err)
	}
	err = descent.WriteDat(f, descent.Table(outcomes),
		fmt.Sprintf("%s mode %s, %s", base.Label, model.Mode, model.Atmosphere),
		"ias,total_drag,sin_gamma,gamma_deg,ft_per_nm,ratio,valid")
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	csvFile := filepath.Join(outdir, fmt.Sprintf("%s-sweep.csv", prefix))
	f, err = os.Create(csvFile)
	if err != nil {
		log.Fatal(err)
	}
	err = descent.WriteCSV(f, outcomes)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	s := descent.Summarize(outcomes)
	fmt.Printf("cases: %d (valid %d, unsustainable %d, failed %d)\n", s.Count, s.Valid, s.Unsustainable, s.Failed)
	if s.Valid > 0 {
		fmt.Printf("mean gradient: %.0f ft/nm (σ %.0f)\n", s.MeanFeetPerNM, s.StdDevFeetPerNM)
		fmt.Printf("shallowest: %.0f ft/nm at %.1f %s\n", s.ShallowestFeetPerNM, s.ShallowestIAS, base.SpeedUnit)
		fmt.Printf("steepest: %.0f ft/nm at %.1f %s\n", s.SteepestFeetPerNM, s.SteepestIAS, base.SpeedUnit)
	}
	if vmd, err := model.Constants.MinimumDragSpeed(base); err == nil {
		fmt.Printf("minimum drag speed: %.1f %s\n", vmd, base.SpeedUnit)
	}
	log.Printf("[info] wrote %s and %s", datFile, csvFile)
}
