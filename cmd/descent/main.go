package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	descent "github.com/LongQin0121/Descent-Gradient"
	kitlog "github.com/go-kit/kit/log"
)

var (
	ias, weight, area, cd0, k, thrust, alt float64
	modeStr, atmStr, scenario, csvPath     string
	interactive, debug                     bool
)

func init() {
	flag.Float64Var(&ias, "ias", 250, "indicated airspeed (kt)")
	flag.Float64Var(&weight, "weight", 58000, "aircraft weight (kg)")
	flag.Float64Var(&area, "area", 122.6, "wing area (m²)")
	flag.Float64Var(&cd0, "cd0", 0.023, "zero-lift drag coefficient")
	flag.Float64Var(&k, "k", 0.0094, "induced drag factor")
	flag.Float64Var(&thrust, "thrust", 7000, "idle thrust (N)")
	flag.Float64Var(&alt, "alt", 0, "altitude (m), only used for the true airspeed")
	flag.StringVar(&modeStr, "mode", "", "force balance mode: A+, A- or B (overrides the configuration)")
	flag.StringVar(&atmStr, "atm", "", "atmosphere: sea-level or exponential (overrides the configuration)")
	flag.StringVar(&scenario, "scenario", "", "batch scenario TOML file")
	flag.StringVar(&csvPath, "csv", "", "write the batch results to this CSV file")
	flag.BoolVar(&interactive, "interactive", false, "prompt for the parameters")
	flag.BoolVar(&debug, "debug", false, "log every computed case")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	conf, err := descent.DefaultConfig()
	if err != nil {
		log.Fatalf("[conf] %s", err)
	}
	model := conf.Model()
	if atmStr != "" {
		if model.Atmosphere, err = descent.ParseAtmosphere(atmStr); err != nil {
			log.Fatal(err)
		}
	}

	if scenario != "" {
		runScenario(conf, model, logger)
		return
	}
	model.Mode = resolveMode(conf, 0)
	switch {
	case interactive:
		p, err := prompt(bufio.NewScanner(os.Stdin), os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		single(model, p)
	default:
		single(model, descent.FlightParameters{IAS: ias, Weight: weight, WingArea: area, CD0: cd0, K: k, IdleThrust: thrust, Altitude: alt})
	}
}

func single(model descent.Model, p descent.FlightParameters) {
	r, err := model.Compute(p)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	if err := descent.Report(os.Stdout, p, r); err != nil {
		log.Fatal(err)
	}
}

// resolveMode returns the mode chosen by the flag, the scenario or the configuration, and logs it.
func resolveMode(conf descent.Config, scenarioMode descent.Mode) descent.Mode {
	mode, source, err := conf.ResolveMode(modeStr, scenarioMode)
	if err != nil {
		log.Fatal(err)
	}
	if source == "builtin default" {
		log.Printf("[info] no mode configured, using %s (set -mode or model.mode in conf.toml)", mode)
	} else {
		log.Printf("[info] mode %s from the %s", mode, source)
	}
	return mode
}

func runScenario(conf descent.Config, model descent.Model, logger kitlog.Logger) {
	sc, err := descent.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("[conf] %s", err)
	}
	model.Mode = resolveMode(conf, sc.Mode)
	sw := descent.NewSweeper(model, conf.Workers, logger)
	sw.Verbose = debug
	outcomes := sw.Run(sc.Cases)
	if err := descent.WriteBatchTable(os.Stdout, outcomes); err != nil {
		log.Fatal(err)
	}
	out := csvPath
	if out == "" {
		out = sc.Output
	}
	if out == "" {
		return
	}
	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := descent.WriteCSV(f, outcomes); err != nil {
		log.Fatal(err)
	}
	log.Printf("[info] wrote %s", out)
}

// prompt asks for every field until it parses, then validates the whole case.
func prompt(in *bufio.Scanner, out io.Writer) (descent.FlightParameters, error) {
	for {
		fields := make(map[string]string)
		for _, p := range descent.Prompts {
			for {
				fmt.Fprintf(out, "%s: ", p.Text)
				if !in.Scan() {
					if err := in.Err(); err != nil {
						return descent.FlightParameters{}, err
					}
					return descent.FlightParameters{}, io.ErrUnexpectedEOF
				}
				text := strings.TrimSpace(in.Text())
				if text == "" && p.Optional {
					break
				}
				if _, err := descent.ParseFloat(p.Field, text); err != nil {
					fmt.Fprintln(out, "Invalid input. Please enter a numeric value.")
					continue
				}
				fields[p.Field] = text
				break
			}
		}
		params, err := descent.ParseFlightParameters(fields)
		if err == nil {
			return params, nil
		}
		if !errors.Is(err, descent.ErrInvalidParameter) {
			return params, err
		}
		fmt.Fprintf(out, "%s\nPlease start again.\n", err)
	}
}
