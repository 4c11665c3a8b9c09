package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/xid"
)

// RunContext identifies one pipeline execution. It is created at pipeline
// start, handed to every step, and discarded at pipeline end.
type RunContext struct {
	RunID     string
	StartedAt time.Time
}

// NewRunContext builds the context for one execution. A hosting scheduler may
// supply its own run id; when empty a fresh xid is generated.
func NewRunContext(runID string) *RunContext {
	if runID == "" {
		runID = xid.New().String()
	}
	return &RunContext{RunID: runID, StartedAt: time.Now().UTC()}
}

// ValidationRunID is the identifier handed to the validation engine so its
// results can be correlated back to this execution:
// "<prefix>:<run id>:<start timestamp>".
func (rc *RunContext) ValidationRunID(prefix string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, rc.RunID, rc.StartedAt.Format(time.RFC3339))
}
