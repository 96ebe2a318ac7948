package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	descent "github.com/LongQin0121/Descent-Gradient"
)

func TestPrompt(t *testing.T) {
	// IAS is mistyped once, k and altitude are skipped.
	in := bufio.NewScanner(strings.NewReader("fast\n300\n64500\n122.6\n0.023\n\n8000\n\n"))
	var out bytes.Buffer
	p, err := prompt(in, &out)
	if err != nil {
		t.Fatal(err)
	}
	exp := descent.FlightParameters{IAS: 300, Weight: 64500, WingArea: 122.6, CD0: 0.023, IdleThrust: 8000}
	if p != exp {
		t.Fatalf("got %+v", p)
	}
	if strings.Count(out.String(), "Invalid input") != 1 {
		t.Fatalf("expected one retry:\n%s", out.String())
	}
}

func TestPromptRestartsOnInvalidParameter(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("0\n64500\n122.6\n0.023\n\n8000\n\n300\n64500\n122.6\n0.023\n\n8000\n\n"))
	var out bytes.Buffer
	p, err := prompt(in, &out)
	if err != nil {
		t.Fatal(err)
	}
	if p.IAS != 300 || !strings.Contains(out.String(), "start again") {
		t.Fatalf("expected a restart, got %+v\n%s", p, out.String())
	}
}

func TestPromptEOF(t *testing.T) {
	_, err := prompt(bufio.NewScanner(strings.NewReader("250\n")), io.Discard)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}
