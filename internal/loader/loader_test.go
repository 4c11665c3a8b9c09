package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ge-pipeline/internal/loader"
	"ge-pipeline/internal/logger"
)

type recordingReplacer struct {
	table string
	cols  []string
	rows  [][]string
}

func (r *recordingReplacer) ReplaceTable(ctx context.Context, table string, cols []string, rows [][]string, onRow func()) error {
	r.table = table
	r.cols = cols
	r.rows = rows
	for range rows {
		if onRow != nil {
			onRow()
		}
	}
	return nil
}

func loaderLog() logger.Logger {
	return logger.NewLogger("test", "error")
}

func writeSource(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadReplacesTableWithLoweredHeader(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, filepath.Join("data", "npi_small.csv"),
		"NPI,Provider_Name\n100,Omaha Clinic\n101,Lincoln Care\n")

	repl := &recordingReplacer{}
	ldr := loader.New(loaderLog(), repl, dir)

	n, err := ldr.Load(context.Background(), loader.DefaultSources()[0], nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows loaded, got %d", n)
	}
	if repl.table != "npi_small" {
		t.Errorf("expected table npi_small, got %s", repl.table)
	}
	if len(repl.cols) != 2 || repl.cols[0] != "npi" || repl.cols[1] != "provider_name" {
		t.Errorf("header must reach the warehouse lowercased: %v", repl.cols)
	}
	if len(repl.rows) != 2 || repl.rows[1][1] != "Lincoln Care" {
		t.Errorf("unexpected rows: %v", repl.rows)
	}
}

func TestLoadFileSkipsReRead(t *testing.T) {
	dir := t.TempDir()
	rel := filepath.Join("data", "state_abbreviations.csv")
	writeSource(t, dir, rel, "state,abbreviation\nNebraska,NE\n")

	repl := &recordingReplacer{}
	ldr := loader.New(loaderLog(), repl, dir)
	src := loader.DefaultSources()[1]

	f, err := ldr.Read(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, rel)); err != nil {
		t.Fatal(err)
	}

	ticks := 0
	n, err := ldr.LoadFile(context.Background(), src, f, func() { ticks++ })
	if err != nil {
		t.Fatalf("loading a parsed file must not touch the filesystem: %v", err)
	}
	if n != 1 || ticks != 1 {
		t.Errorf("expected 1 row and 1 tick, got %d and %d", n, ticks)
	}
	if repl.table != "state_abbreviations" {
		t.Errorf("expected table state_abbreviations, got %s", repl.table)
	}
}
