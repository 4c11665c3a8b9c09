package cmd

import (
	"context"
	"fmt"
	"time"

	"ge-pipeline/internal/dbt"
	"ge-pipeline/internal/expectations"
	"ge-pipeline/internal/loader"
	"ge-pipeline/internal/pipeline"
	"ge-pipeline/internal/warehouse"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var runID string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: load, check sources, transform, validate, publish",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLog()
		cfg := LoadConfig()
		if err := cfg.RequireProject(); err != nil {
			return err
		}
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}

		conn, err := warehouse.Open(log, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		fmt.Printf("🚚 Connected via %s, project %s\n", conn.Driver, cfg.ProjectDir)

		ldr := loader.New(log, conn, cfg.ProjectDir)
		sources := loader.DefaultSources()

		// Parse the source files once up front; the load step reuses the
		// parsed rows, and their count sizes the progress bar.
		files := make([]*loader.CSVFile, len(sources))
		total := 0
		for i, src := range sources {
			f, err := ldr.Read(src)
			if err != nil {
				return err
			}
			files[i] = f
			total += len(f.Rows)
		}

		uiprogress.Start()
		bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Loading: "
		})

		p := pipeline.New(log, "ge-tutorials",
			&pipeline.LoadStep{Loader: ldr, Sources: sources, Files: files, OnRow: func() { bar.Incr() }},
			&pipeline.SourceCheckStep{Log: log},
			&pipeline.TransformStep{Runner: dbt.NewRunner(log, cfg.TransformCommand, cfg.ProjectDir)},
			&pipeline.ValidateStep{
				Client: expectations.NewClient(log, cfg.ValidationCommand, cfg.ProjectDir),
				Table:  pipeline.AnalyticalTable,
				Suite:  pipeline.CriticalSuite,
			},
			&pipeline.PublishStep{
				Conn:   conn,
				Log:    log,
				Source: pipeline.AnalyticalTable,
				Target: pipeline.ProductionTable,
			},
		)

		rc := pipeline.NewRunContext(runID)
		start := time.Now()
		results, runErr := p.Run(context.Background(), rc)
		uiprogress.Stop()

		printSummary(results, rc.RunID)
		fmt.Printf("Time Elapsed: %s\n", time.Since(start).Round(time.Millisecond))

		return runErr
	},
}

// printSummary renders the per-step report.
func printSummary(results []pipeline.StepResult, runID string) {
	fmt.Printf("\n📊 Pipeline Summary (run %s):\n", runID)
	for i, r := range results {
		icon := "✓"
		switch r.Status {
		case pipeline.StatusSkipped:
			icon = "-"
		case pipeline.StatusFailed:
			icon = "!"
		}
		fmt.Printf("[%s] [%02d/%02d] %-14s : %s (%s)\n",
			icon, i+1, len(results), r.Step, r.Status, r.Duration.Round(time.Millisecond))
		if r.Message != "" {
			fmt.Printf("    └ %s\n", r.Message)
		}
	}
	fmt.Println("--------------------------------------------------")
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runID, "run-id", "", "Run identifier from a hosting scheduler (generated when empty)")
}
