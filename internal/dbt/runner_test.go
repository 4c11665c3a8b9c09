package dbt_test

import (
	"context"
	"path/filepath"
	"testing"

	"ge-pipeline/internal/dbt"
	"ge-pipeline/internal/logger"
)

func testLog() logger.Logger {
	return logger.NewLogger("test", "error")
}

func TestRunnerArgs(t *testing.T) {
	r := dbt.NewRunner(testLog(), "dbt", "/warehouse/project")

	args := r.Args()
	want := []string{"run", "--project-dir", "/warehouse/project"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], args[i])
		}
	}
}

func TestRunnerDefaultCommand(t *testing.T) {
	r := dbt.NewRunner(testLog(), "", "/proj")
	if r.Command != "dbt" {
		t.Errorf("expected default command dbt, got %s", r.Command)
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	r := dbt.NewRunner(testLog(), filepath.Join(t.TempDir(), "no-such-dbt"), "/proj")
	if err := r.Run(context.Background()); err == nil {
		t.Error("expected error for missing tool binary")
	}
}
