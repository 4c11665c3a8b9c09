package expectations_test

import (
	"strings"
	"testing"

	"ge-pipeline/internal/expectations"
)

func TestDecodeResultFailure(t *testing.T) {
	report := `{
		"success": false,
		"run_id": "ge-pipeline:run42:2020-01-01T00:00:00Z",
		"statistics": {
			"evaluated_expectations": 4,
			"successful_expectations": 3,
			"unsuccessful_expectations": 1,
			"success_percent": 75.0
		},
		"results": [
			{"success": true, "expectation_type": "expect_table_row_count_to_be_between"},
			{"success": false, "expectation_type": "expect_column_values_to_not_be_null", "column": "state"}
		]
	}`

	res, err := expectations.DecodeResult(strings.NewReader(report))
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Error("expected success = false")
	}
	if res.Statistics.EvaluatedExpectations != 4 || res.Statistics.UnsuccessfulExpectations != 1 {
		t.Errorf("unexpected statistics: %+v", res.Statistics)
	}

	failed := res.Failed()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed check, got %d", len(failed))
	}
	if failed[0].ExpectationType != "expect_column_values_to_not_be_null" || failed[0].Column != "state" {
		t.Errorf("unexpected failed check: %+v", failed[0])
	}
}

func TestDecodeResultGarbage(t *testing.T) {
	if _, err := expectations.DecodeResult(strings.NewReader("not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestSuiteFailureErrorNamesSuite(t *testing.T) {
	err := &expectations.SuiteFailureError{Suite: "count_providers_by_state.critical"}
	if !strings.Contains(err.Error(), "count_providers_by_state.critical") {
		t.Errorf("error must contain the suite name: %s", err.Error())
	}
}
