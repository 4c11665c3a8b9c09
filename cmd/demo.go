package cmd

import (
	"fmt"

	"ge-pipeline/internal/demo"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	demoRows int
	demoSeed int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate sample source CSVs under the project's data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLog()
		cfg := LoadConfig()
		if err := cfg.RequireProject(); err != nil {
			return err
		}

		rows := viper.GetInt("demo.rows")
		if demoRows > 0 { // Flag override
			rows = demoRows
		}

		gen := demo.NewGenerator(log, cfg.ProjectDir, rows, demoSeed)
		if err := gen.Generate(); err != nil {
			return err
		}

		fmt.Printf("🎲 Demo data written to %s/data\n", cfg.ProjectDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntVar(&demoRows, "rows", 0, "Number of provider rows to generate (overrides config)")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 0, "Random seed (0 = random each run)")

	viper.SetDefault("demo.rows", 100)
}
