package cmd

import (
	"context"

	"ge-pipeline/internal/dbt"

	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Materialize the derived tables by running the dbt project",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLog()
		cfg := LoadConfig()
		if err := cfg.RequireProject(); err != nil {
			return err
		}

		runner := dbt.NewRunner(log, cfg.TransformCommand, cfg.ProjectDir)
		return runner.Run(context.Background())
	},
}

func init() {
	RootCmd.AddCommand(transformCmd)
}
