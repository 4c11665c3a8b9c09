package expectations

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"ge-pipeline/internal/logger"
)

// Request binds one table to one named suite for one pipeline run.
type Request struct {
	Table string
	Suite string
	RunID string
}

// Client invokes the external validation engine as a subprocess. The engine
// auto-discovers its own configuration (datasources, suites, actions) from
// the project directory; this client only passes the batch binding and reads
// back the JSON report from stdout. The engine may exit non-zero when the
// suite fails, so a parseable report takes precedence over the exit status.
type Client struct {
	Command    string // engine binary, normally "great_expectations"
	ProjectDir string

	log logger.Logger
}

func NewClient(log logger.Logger, command, projectDir string) *Client {
	if command == "" {
		command = "great_expectations"
	}
	return &Client{Command: command, ProjectDir: projectDir, log: log}
}

// Args returns the argument vector for one validation request.
func (c *Client) Args(req Request) []string {
	return []string{
		"validate",
		"--project-dir", c.ProjectDir,
		"--table", req.Table,
		"--suite", req.Suite,
		"--run-id", req.RunID,
	}
}

// Validate runs the engine against one batch and returns its report. Side
// actions (persisting results, data docs, notifications) belong to the engine
// and are not observed here.
func (c *Client) Validate(ctx context.Context, req Request) (*Result, error) {
	cmd := exec.CommandContext(ctx, c.Command, c.Args(req)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.log.Info("validating table ", req.Table, " against suite ", req.Suite, " (run ", req.RunID, ")")
	runErr := cmd.Run()

	res, decodeErr := DecodeResult(&stdout)
	if decodeErr == nil {
		return res, nil
	}

	if runErr != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			c.log.Error(c.Command, ": ", msg)
		}
		return nil, fmt.Errorf("validation engine %s failed: %w", c.Command, runErr)
	}
	return nil, decodeErr
}
