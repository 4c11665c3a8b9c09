package pipeline

import (
	"context"
	"fmt"
	"time"

	"ge-pipeline/internal/logger"
)

// Status is the outcome of one step.
type Status int

const (
	StatusCompleted Status = iota
	StatusSkipped // step is a declared placeholder and did no work
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "COMPLETED"
	case StatusSkipped:
		return "SKIPPED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// StepResult records what one step did.
type StepResult struct {
	Step     string
	Status   Status
	Message  string
	Duration time.Duration
}

// Step is one unit of the chain. A step only runs if every step before it
// completed without error.
type Step interface {
	Name() string
	Run(ctx context.Context, rc *RunContext) (StepResult, error)
}

// Pipeline executes its steps strictly sequentially. There is no fan-out,
// no retry and no compensation: the first error halts the remaining chain.
type Pipeline struct {
	Name  string
	Steps []Step

	log logger.Logger
}

func New(log logger.Logger, name string, steps ...Step) *Pipeline {
	return &Pipeline{Name: name, Steps: steps, log: log}
}

// Run executes the chain for one RunContext. It returns the results of every
// step that ran, including the failed one, alongside the error that stopped
// the chain.
func (p *Pipeline) Run(ctx context.Context, rc *RunContext) ([]StepResult, error) {
	p.log.Info("pipeline ", p.Name, " starting, run id ", rc.RunID)

	var results []StepResult
	for _, step := range p.Steps {
		p.log.Info("step ", step.Name(), " starting")
		start := time.Now()

		res, err := step.Run(ctx, rc)
		res.Step = step.Name()
		res.Duration = time.Since(start)

		if err != nil {
			res.Status = StatusFailed
			res.Message = err.Error()
			results = append(results, res)
			p.log.Error("step ", step.Name(), " failed: ", err)
			return results, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		results = append(results, res)
		p.log.Info("step ", step.Name(), " ", res.Status.String(), " in ", res.Duration.Round(time.Millisecond))
	}

	p.log.Info("pipeline ", p.Name, " complete")
	return results, nil
}
