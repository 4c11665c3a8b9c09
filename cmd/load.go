package cmd

import (
	"context"
	"fmt"
	"time"

	"ge-pipeline/internal/loader"
	"ge-pipeline/internal/warehouse"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the source tables with the project's CSV files",
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

		fmt.Printf("🚚 Connected via %s\n", conn.Driver)

		ldr := loader.New(log, conn, cfg.ProjectDir)
		start := time.Now()

		type loadResult struct {
			table string
			rows  int
		}
		var results []loadResult

		uiprogress.Start()
		for _, src := range loader.DefaultSources() {
			f, err := ldr.Read(src)
			if err != nil {
				uiprogress.Stop()
				return err
			}
			bar := uiprogress.AddBar(len(f.Rows)).AppendCompleted().PrependElapsed()
			name := src.Table
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return fmt.Sprintf("%-20s", name)
			})

			n, err := ldr.LoadFile(context.Background(), src, f, func() { bar.Incr() })
			if err != nil {
				uiprogress.Stop()
				return err
			}
			results = append(results, loadResult{table: src.Table, rows: n})
		}
		uiprogress.Stop()

		fmt.Println("\n📊 Load Summary:")
		total := 0
		for i, r := range results {
			fmt.Printf("[✓] [%02d/%02d] %-20s : %d rows\n", i+1, len(results), r.table, r.rows)
			total += r.rows
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Rows: %d\n", total)
		fmt.Printf("Load Done! Time Elapsed: %s\n", time.Since(start).Round(time.Millisecond))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)
}
