package expectations

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the validation engine's structured report for one suite run
// against one batch. Only the success flag gates the pipeline; the rest is
// carried for reporting.
type Result struct {
	Success    bool          `json:"success"`
	RunID      string        `json:"run_id,omitempty"`
	Statistics Statistics    `json:"statistics"`
	Results    []CheckResult `json:"results"`
}

// Statistics summarizes a suite run.
type Statistics struct {
	EvaluatedExpectations    int     `json:"evaluated_expectations"`
	SuccessfulExpectations   int     `json:"successful_expectations"`
	UnsuccessfulExpectations int     `json:"unsuccessful_expectations"`
	SuccessPercent           float64 `json:"success_percent"`
}

// CheckResult is the outcome of a single declarative check. Details are
// engine-defined and passed through opaquely.
type CheckResult struct {
	Success         bool            `json:"success"`
	ExpectationType string          `json:"expectation_type"`
	Column          string          `json:"column,omitempty"`
	Details         json.RawMessage `json:"details,omitempty"`
}

// Failed returns the checks that did not pass.
func (r *Result) Failed() []CheckResult {
	var failed []CheckResult
	for _, cr := range r.Results {
		if !cr.Success {
			failed = append(failed, cr)
		}
	}
	return failed
}

// DecodeResult parses the engine's JSON report.
func DecodeResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode validation report: %w", err)
	}
	return &res, nil
}

// SuiteFailureError is raised when a suite reports success = false. It is the
// pipeline's only custom error and always names the suite.
type SuiteFailureError struct {
	Suite string
}

func (e *SuiteFailureError) Error() string {
	return fmt.Sprintf("the analytical output does not meet the expectations in the suite: %s", e.Suite)
}
