package dbt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"ge-pipeline/internal/logger"
)

// Runner invokes the external SQL-transformation tool as a blocking
// subprocess. The tool owns its own diagnostics; the only signal this
// pipeline consumes is the exit code.
type Runner struct {
	Command    string // tool binary, normally "dbt"
	ProjectDir string

	log logger.Logger
}

func NewRunner(log logger.Logger, command, projectDir string) *Runner {
	if command == "" {
		command = "dbt"
	}
	return &Runner{Command: command, ProjectDir: projectDir, log: log}
}

// Args returns the argument vector passed to the tool.
func (r *Runner) Args() []string {
	return []string{"run", "--project-dir", r.ProjectDir}
}

// Run executes the tool and blocks until it exits. Tool output is streamed
// line by line through the logger. A non-zero exit status is fatal.
func (r *Runner) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.Command, r.Args()...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout of %s: %w", r.Command, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr of %s: %w", r.Command, err)
	}

	r.log.Info("running ", r.Command, " ", r.Args())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", r.Command, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go r.logLines(&wg, stdout, r.log.Info)
	go r.logLines(&wg, stderr, r.log.Warn)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("transformation tool %s failed: %w", r.Command, err)
	}

	r.log.Info(r.Command, " completed")
	return nil
}

func (r *Runner) logLines(wg *sync.WaitGroup, pipe io.Reader, logFn func(...interface{})) {
	defer wg.Done()
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		logFn(r.Command, ": ", scanner.Text())
	}
}
