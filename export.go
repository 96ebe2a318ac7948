package descent

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gonum/matrix/mat64"
)

// FormatRatio returns the horizontal:vertical ratio as "1:N" or "unsustainable".
func FormatRatio(r DescentResult) string {
	if !r.IsValidDescent || math.IsInf(r.Ratio, 0) || math.IsNaN(r.Ratio) {
		return "unsustainable"
	}
	return fmt.Sprintf("1:%.1f", r.Ratio)
}

// Report writes a human readable report of one computation.
func Report(w io.Writer, p FlightParameters, r DescentResult) error {
	bar := strings.Repeat("=", 60)
	var b strings.Builder
	fmt.Fprintln(&b, bar)
	if p.Label != "" {
		fmt.Fprintf(&b, "Descent gradient: %s (mode %s)\n", p.Label, r.Mode)
	} else {
		fmt.Fprintf(&b, "Descent gradient (mode %s)\n", r.Mode)
	}
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "Inputs:")
	fmt.Fprintf(&b, "  IAS:              %g %s (%.2f m/s)\n", p.IAS, p.SpeedUnit, r.IASms)
	fmt.Fprintf(&b, "  Weight:           %g %s (%.0f N)\n", p.Weight, p.WeightUnit, r.WeightN)
	fmt.Fprintf(&b, "  Wing area:        %g m²\n", p.WingArea)
	fmt.Fprintf(&b, "  CD0:              %g\n", p.CD0)
	fmt.Fprintf(&b, "  k:                %g\n", p.K)
	fmt.Fprintf(&b, "  Idle thrust:      %.0f N\n", p.IdleThrust)
	fmt.Fprintf(&b, "  Altitude:         %.0f m (ρ=%.4f kg/m³, TAS %.2f m/s)\n", p.Altitude, r.Density, r.TrueAirspeed)
	fmt.Fprintln(&b, "\nDrag:")
	fmt.Fprintf(&b, "  Dynamic pressure: %.2f Pa\n", r.Drag.DynamicPressure)
	fmt.Fprintf(&b, "  Parasite drag:    %.2f N\n", r.Drag.Parasite)
	fmt.Fprintf(&b, "  Induced drag:     %.2f N\n", r.Drag.Induced)
	fmt.Fprintf(&b, "  Total drag:       %.2f N\n", r.Drag.Total)
	fmt.Fprintf(&b, "  Net drag:         %.2f N\n", r.Drag.Total-p.IdleThrust)
	fmt.Fprintln(&b, "\nResults:")
	if r.IsValidDescent {
		fmt.Fprintf(&b, "  sin(γ):           %.6f\n", r.SinGamma)
		fmt.Fprintf(&b, "  γ:                %.3f°\n", r.GammaDeg)
		fmt.Fprintf(&b, "  Gradient:         %.0f ft/nm\n", r.FeetPerNM)
		fmt.Fprintf(&b, "  Ratio:            %s\n", FormatRatio(r))
		fmt.Fprintf(&b, "  Vertical speed:   %.0f ft/min\n", r.VerticalSpeed)
		if r.Clamped {
			fmt.Fprintln(&b, "  warning: descent sine clamped to 1")
		}
	} else {
		fmt.Fprintln(&b, "  warning: idle thrust is at least the drag, no stable idle descent")
	}
	fmt.Fprintln(&b, bar)
	_, err := io.WriteString(w, b.String())
	return err
}

var csvHeader = []string{"index", "label", "ias", "speed_unit", "weight", "weight_unit", "wing_area", "cd0", "k",
	"idle_thrust", "altitude", "dynamic_pressure", "parasite_drag", "induced_drag", "total_drag",
	"sin_gamma", "gamma_deg", "ft_per_nm", "ratio", "valid", "error"}

// CSV returns the fields of this outcome in the order of the CSV header.
func (o Outcome) CSV() []string {
	p := o.Params
	rec := []string{strconv.Itoa(o.Index), p.Label, ff(p.IAS), p.SpeedUnit.String(), ff(p.Weight), p.WeightUnit.String(),
		ff(p.WingArea), ff(p.CD0), ff(p.K), ff(p.IdleThrust), ff(p.Altitude)}
	if !o.OK() {
		rec = append(rec, "", "", "", "", "", "", "", "", "false", o.Err.Error())
		return rec
	}
	r := o.Result
	return append(rec, ff(r.Drag.DynamicPressure), ff(r.Drag.Parasite), ff(r.Drag.Induced), ff(r.Drag.Total),
		ff(r.SinGamma), ff(r.GammaDeg), ff(r.FeetPerNM), ff(r.Ratio), strconv.FormatBool(r.IsValidDescent), "")
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the header and one record per outcome.
func WriteCSV(w io.Writer, outcomes []Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := cw.Write(o.CSV()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBatchTable writes an aligned table of a batch.
func WriteBatchTable(w io.Writer, outcomes []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tIAS\tWEIGHT\tCD0\tk\tAREA(m²)\tIDLE(N)\tGRADIENT\tANGLE(°)\tFT/NM\tRATIO")
	for _, o := range outcomes {
		p := o.Params
		fmt.Fprintf(tw, "%s\t%g%s\t%g%s\t%g\t%g\t%g\t%.0f\t", p.Label, p.IAS, p.SpeedUnit, p.Weight, p.WeightUnit, p.CD0, p.K, p.WingArea, p.IdleThrust)
		switch {
		case !o.OK():
			fmt.Fprintf(tw, "error\t-\t-\t%s\n", o.Err)
		case !o.Result.IsValidDescent:
			fmt.Fprintln(tw, "no descent\tN/A\tN/A\tN/A")
		default:
			r := o.Result
			fmt.Fprintf(tw, "%.4f\t%.2f\t%.0f\t%s\n", r.DescentGradient, r.DescentAngleDeg, r.FeetPerNM, FormatRatio(r))
		}
	}
	return tw.Flush()
}

// WriteDat writes a matrix as comma separated rows preceded by `%` comment lines, for plotting tools.
func WriteDat(w io.Writer, m *mat64.Dense, comments ...string) error {
	var b strings.Builder
	for _, c := range comments {
		fmt.Fprintf(&b, "%% %s\n", c)
	}
	if m != nil {
		rows, _ := m.Dims()
		for i := 0; i < rows; i++ {
			row := m.RawRowView(i)
			fields := make([]string, len(row))
			for j, v := range row {
				fields[j] = fmt.Sprintf("%f", v)
			}
			fmt.Fprintln(&b, strings.Join(fields, ","))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
