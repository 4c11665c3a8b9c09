package expectations_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ge-pipeline/internal/expectations"
	"ge-pipeline/internal/logger"
)

func testLog() logger.Logger {
	return logger.NewLogger("test", "error")
}

// fakeEngine writes a stub validation engine that prints the given report and
// exits with the given code.
func fakeEngine(t *testing.T, report string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engine uses a shell script")
	}
	path := filepath.Join(t.TempDir(), "fake_great_expectations")
	script := fmt.Sprintf("#!/bin/sh\ncat <<'EOF'\n%s\nEOF\nexit %d\n", report, exitCode)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClientArgs(t *testing.T) {
	c := expectations.NewClient(testLog(), "", "/proj")
	if c.Command != "great_expectations" {
		t.Errorf("expected default command, got %s", c.Command)
	}

	args := c.Args(expectations.Request{
		Table: "count_providers_by_state",
		Suite: "count_providers_by_state.critical",
		RunID: "ge-pipeline:run42:2020-01-01T00:00:00Z",
	})
	want := []string{
		"validate",
		"--project-dir", "/proj",
		"--table", "count_providers_by_state",
		"--suite", "count_providers_by_state.critical",
		"--run-id", "ge-pipeline:run42:2020-01-01T00:00:00Z",
	}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d: %v", len(want), len(args), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], args[i])
		}
	}
}

func TestClientValidateSuccess(t *testing.T) {
	bin := fakeEngine(t, `{"success": true, "statistics": {"evaluated_expectations": 2, "successful_expectations": 2}}`, 0)

	c := expectations.NewClient(testLog(), bin, "/proj")
	res, err := c.Validate(context.Background(), expectations.Request{Table: "t", Suite: "s", RunID: "r"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Error("expected success = true")
	}
}

func TestClientValidateFailedSuiteWithNonZeroExit(t *testing.T) {
	// Engines commonly exit 1 when the suite fails; the parsed report still wins.
	bin := fakeEngine(t, `{"success": false, "statistics": {"evaluated_expectations": 1, "unsuccessful_expectations": 1}}`, 1)

	c := expectations.NewClient(testLog(), bin, "/proj")
	res, err := c.Validate(context.Background(), expectations.Request{Table: "t", Suite: "s", RunID: "r"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Error("expected success = false")
	}
}

func TestClientValidateEngineCrash(t *testing.T) {
	bin := fakeEngine(t, `boom`, 2)

	c := expectations.NewClient(testLog(), bin, "/proj")
	if _, err := c.Validate(context.Background(), expectations.Request{Table: "t", Suite: "s", RunID: "r"}); err == nil {
		t.Error("expected error when the engine fails without a report")
	}
}

func TestClientValidateMissingEngine(t *testing.T) {
	c := expectations.NewClient(testLog(), filepath.Join(t.TempDir(), "nope"), "/proj")
	if _, err := c.Validate(context.Background(), expectations.Request{Table: "t", Suite: "s", RunID: "r"}); err == nil {
		t.Error("expected error for missing engine binary")
	}
}
