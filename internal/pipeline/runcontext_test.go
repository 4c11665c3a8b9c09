package pipeline_test

import (
	"strings"
	"testing"
	"time"

	"ge-pipeline/internal/pipeline"
)

func TestNewRunContextGeneratesID(t *testing.T) {
	rc := pipeline.NewRunContext("")
	if rc.RunID == "" {
		t.Error("expected a generated run id")
	}
	if rc.StartedAt.IsZero() {
		t.Error("expected a start timestamp")
	}
}

func TestNewRunContextKeepsSchedulerID(t *testing.T) {
	rc := pipeline.NewRunContext("scheduled__2020-01-01")
	if rc.RunID != "scheduled__2020-01-01" {
		t.Errorf("scheduler-provided run id was replaced: %s", rc.RunID)
	}
}

func TestValidationRunID(t *testing.T) {
	rc := pipeline.NewRunContext("run42")
	got := rc.ValidationRunID("ge-pipeline")

	want := "ge-pipeline:run42:" + rc.StartedAt.Format(time.RFC3339)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !strings.HasPrefix(got, "ge-pipeline:") {
		t.Errorf("validation run id must carry the pipeline prefix: %s", got)
	}
}
