package cmd

import (
	"context"
	"fmt"
	"strings"

	"ge-pipeline/internal/expectations"
	"ge-pipeline/internal/logger"
	"ge-pipeline/internal/pipeline"
	"ge-pipeline/internal/warehouse"

	"github.com/spf13/cobra"
)

var (
	validateTable string
	validateSuite string
	validateRunID string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Evaluate a table against its expectation suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLog()
		cfg := LoadConfig()
		if err := cfg.RequireProject(); err != nil {
			return err
		}

		// Best-effort row preview before gating; the engine reaches the
		// warehouse through its own configuration, so a database URL here is
		// optional.
		if cfg.DatabaseURL != "" {
			printPreview(log, cfg.DatabaseURL, validateTable)
		}

		client := expectations.NewClient(log, cfg.ValidationCommand, cfg.ProjectDir)
		rc := pipeline.NewRunContext(validateRunID)

		res, err := client.Validate(context.Background(), expectations.Request{
			Table: validateTable,
			Suite: validateSuite,
			RunID: rc.ValidationRunID(pipeline.RunIDPrefix),
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n📊 Validation Summary (%s):\n", validateSuite)
		fmt.Printf("Expectations: %d evaluated, %d met, %d failed (%.1f%%)\n",
			res.Statistics.EvaluatedExpectations,
			res.Statistics.SuccessfulExpectations,
			res.Statistics.UnsuccessfulExpectations,
			res.Statistics.SuccessPercent)
		for _, f := range res.Failed() {
			fmt.Printf("[!] %s", f.ExpectationType)
			if f.Column != "" {
				fmt.Printf(" (column %s)", f.Column)
			}
			fmt.Println()
		}

		if !res.Success {
			return &expectations.SuiteFailureError{Suite: validateSuite}
		}
		fmt.Println("Suite passed.")
		return nil
	},
}

// printPreview shows the first rows of the table under validation. Failures
// here never gate the pipeline; the expectation suite owns the verdict.
func printPreview(log logger.Logger, dbURL, table string) {
	conn, err := warehouse.Open(log, dbURL)
	if err != nil {
		log.Warn("preview unavailable: ", err)
		return
	}
	defer conn.Close()

	cols, rows, err := conn.PreviewRows(context.Background(), table, 5)
	if err != nil {
		log.Warn("preview of ", table, " unavailable: ", err)
		return
	}

	fmt.Printf("🔍 Preview of %s:\n", table)
	fmt.Println("    " + strings.Join(cols, " | "))
	for _, r := range rows {
		fmt.Println("    " + strings.Join(r, " | "))
	}
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateTable, "table", pipeline.AnalyticalTable, "Table to validate")
	validateCmd.Flags().StringVar(&validateSuite, "suite", pipeline.CriticalSuite, "Expectation suite name")
	validateCmd.Flags().StringVar(&validateRunID, "run-id", "", "Run identifier (generated when empty)")
}
