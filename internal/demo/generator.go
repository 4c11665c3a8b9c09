package demo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ge-pipeline/internal/logger"

	"github.com/brianvoe/gofakeit/v6"
)

// npiHeader is deliberately mixed-case: the loader lowercases it on the way
// into the warehouse, same as the real NPPES extract.
var npiHeader = []string{"NPI", "Provider_Name", "Provider_Organization_Name", "Provider_City", "Provider_State"}

// Generator writes sample source CSVs under <project>/data so the whole
// pipeline can be exercised without the real NPPES extract.
type Generator struct {
	ProjectDir string
	Rows       int

	log   logger.Logger
	faker *gofakeit.Faker
}

// NewGenerator builds a generator for the given project directory. seed = 0
// means random data on every run; any other seed reproduces the same files.
func NewGenerator(log logger.Logger, projectDir string, rows int, seed int64) *Generator {
	return &Generator{
		ProjectDir: projectDir,
		Rows:       rows,
		log:        log,
		faker:      gofakeit.New(seed),
	}
}

// Generate writes data/npi_small.csv and data/state_abbreviations.csv.
// Existing files are overwritten.
func (g *Generator) Generate() error {
	dataDir := filepath.Join(g.ProjectDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := g.writeNpiSmall(filepath.Join(dataDir, "npi_small.csv")); err != nil {
		return err
	}
	return g.writeStateAbbreviations(filepath.Join(dataDir, "state_abbreviations.csv"))
}

func (g *Generator) writeNpiSmall(path string) error {
	rows := make([][]string, 0, g.Rows)
	for i := 0; i < g.Rows; i++ {
		rows = append(rows, []string{
			strconv.Itoa(g.faker.Number(1000000000, 1999999999)), // 10-digit NPI
			g.faker.Name(),
			g.faker.Company(),
			g.faker.City(),
			g.faker.StateAbr(),
		})
	}
	return g.writeCSV(path, npiHeader, rows)
}

func (g *Generator) writeStateAbbreviations(path string) error {
	rows := make([][]string, 0, len(States))
	for _, s := range States {
		rows = append(rows, []string{s[0], s[1]})
	}
	return g.writeCSV(path, []string{"state", "abbreviation"}, rows)
}

func (g *Generator) writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	g.log.Info("wrote ", len(rows), " rows to ", path)
	return nil
}
