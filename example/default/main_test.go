package main

import (
	"testing"

	"github.com/alecthomas/kong"
)

func TestPprofFlags(t *testing.T) {
	parser := kong.Must(&CLI)

	if _, err := parser.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if CLI.Pprof || CLI.PprofAddr != "localhost:8080" {
		t.Fatalf("expected the dashboard to be off by default, got pprof=%v addr=%q", CLI.Pprof, CLI.PprofAddr)
	}

	if _, err := parser.Parse([]string{"--pprof", "--pprof-addr", "localhost:9090"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !CLI.Pprof || CLI.PprofAddr != "localhost:9090" {
		t.Fatalf("expected the dashboard flags to apply, got pprof=%v addr=%q", CLI.Pprof, CLI.PprofAddr)
	}
}

func TestPprofEnabledEnv(t *testing.T) {
	t.Setenv("PPROF_ENABLED", "true")
	parser := kong.Must(&CLI)

	if _, err := parser.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !CLI.Pprof {
		t.Fatalf("expected PPROF_ENABLED to turn the dashboard on")
	}
}
