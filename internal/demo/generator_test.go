package demo_test

import (
	"testing"

	"ge-pipeline/internal/demo"
	"ge-pipeline/internal/loader"
	"ge-pipeline/internal/logger"
)

func testLog() logger.Logger {
	return logger.NewLogger("test", "error")
}

func TestGenerateWritesBothSources(t *testing.T) {
	dir := t.TempDir()

	gen := demo.NewGenerator(testLog(), dir, 25, 42)
	if err := gen.Generate(); err != nil {
		t.Fatal(err)
	}

	// The generated files must load through the same source definitions the
	// real pipeline uses.
	ldr := loader.New(testLog(), nil, dir)
	sources := loader.DefaultSources()

	npi, err := ldr.Read(sources[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(npi.Rows) != 25 {
		t.Errorf("expected 25 provider rows, got %d", len(npi.Rows))
	}

	states, err := ldr.Read(sources[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(states.Rows) != len(demo.States) {
		t.Errorf("expected %d state rows, got %d", len(demo.States), len(states.Rows))
	}
}

func TestGeneratedNpiHeaderLowercases(t *testing.T) {
	dir := t.TempDir()
	if err := demo.NewGenerator(testLog(), dir, 1, 1).Generate(); err != nil {
		t.Fatal(err)
	}

	f, err := loader.ReadCSV(dir+"/data/npi_small.csv", true)
	if err != nil {
		t.Fatal(err)
	}
	if f.Header[0] != "npi" {
		t.Errorf("expected lowercased npi column, got %v", f.Header)
	}
}

func TestStatesTableComplete(t *testing.T) {
	if len(demo.States) != 51 { // 50 states plus DC
		t.Errorf("expected 51 entries, got %d", len(demo.States))
	}
	seen := make(map[string]bool)
	for _, s := range demo.States {
		if len(s[1]) != 2 {
			t.Errorf("abbreviation must be two letters: %v", s)
		}
		if seen[s[1]] {
			t.Errorf("duplicate abbreviation: %s", s[1])
		}
		seen[s[1]] = true
	}
}
