package descent

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestReport(t *testing.T) {
	r, _ := ComputeDescentGradient(a320(), ModeAPlus)
	var buf bytes.Buffer
	if err := Report(&buf, a320(), r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, exp := range []string{"A320 (mode A+)", "sin(γ):           -0.034994", "γ:                -2.005°", "213 ft/nm", "1:28.6", "Total drag:       31016.40 N"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("report is missing %q:\n%s", exp, out)
		}
	}

	p := a320()
	p.IdleThrust = 40000
	r, _ = ComputeDescentGradient(p, ModeB)
	buf.Reset()
	Report(&buf, p, r)
	if !strings.Contains(buf.String(), "no stable idle descent") || strings.Contains(buf.String(), "sin(γ)") {
		t.Fatalf("unsustainable report is wrong:\n%s", buf.String())
	}
	if !strings.Contains(r.String(), "unsustainable") {
		t.Fatal("String() must flag the unsustainable descent")
	}
}

func TestWriteCSV(t *testing.T) {
	cases := []FlightParameters{a320(), a320Balance(), {Label: "broken", IAS: -1}}
	outcomes := NewSweeper(NewModel(ModeB), 1, nil).Run(cases)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, outcomes); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("expected a header and 3 rows, got %d", len(records))
	}
	for _, rec := range records {
		if len(rec) != len(csvHeader) {
			t.Fatalf("record has %d fields instead of %d", len(rec), len(csvHeader))
		}
	}
	if records[2][1] != "A320-B" || records[2][19] != "true" {
		t.Fatalf("unexpected row %v", records[2])
	}
	if records[3][19] != "false" || !strings.Contains(records[3][20], "invalid parameter") {
		t.Fatalf("failed row must carry its error: %v", records[3])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteBatchTable(t *testing.T) {
	p := a320()
	p.IdleThrust = 40000
	outcomes := NewSweeper(NewModel(ModeB), 2, nil).Run([]FlightParameters{a320Balance(), p, {Label: "zero", IAS: 0}})
	var buf bytes.Buffer
	if err := WriteBatchTable(&buf, outcomes); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, exp := range []string{"LABEL", "1:19.1", "no descent", "error"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("table is missing %q:\n%s", exp, out)
		}
	}
	if err := WriteBatchTable(failingWriter{}, outcomes); err == nil {
		t.Fatal("write errors must be returned")
	}
}

func TestWriteDat(t *testing.T) {
	m := mat64.NewDense(2, 2, []float64{1, 2, 3, 4})
	var buf bytes.Buffer
	if err := WriteDat(&buf, m, "first", "second"); err != nil {
		t.Fatal(err)
	}
	exp := "% first\n% second\n1.000000,2.000000\n3.000000,4.000000\n"
	if buf.String() != exp {
		t.Fatalf("got\n%s\nexpected\n%s", buf.String(), exp)
	}
}
