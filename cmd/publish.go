package cmd

import (
	"context"
	"fmt"

	"ge-pipeline/internal/pipeline"
	"ge-pipeline/internal/warehouse"

	"github.com/spf13/cobra"
)

var (
	publishSource string
	publishTarget string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Promote the validated table to the production name",
	Long: `Promote the validated table to the production name by dropping any
prior production table and renaming the validated table into its place.
This does not re-run validation; use it only after a passing validate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLog()
		cfg := LoadConfig()
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}

		conn, err := warehouse.Open(log, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		step := &pipeline.PublishStep{Conn: conn, Log: log, Source: publishSource, Target: publishTarget}
		rc := pipeline.NewRunContext("")
		res, err := step.Run(context.Background(), rc)
		if err != nil {
			return err
		}

		fmt.Printf("[✓] %s\n", res.Message)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)

	publishCmd.Flags().StringVar(&publishSource, "table", pipeline.AnalyticalTable, "Table to promote")
	publishCmd.Flags().StringVar(&publishTarget, "target", pipeline.ProductionTable, "Production table name")
}
