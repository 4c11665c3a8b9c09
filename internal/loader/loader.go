package loader

import (
	"context"
	"path/filepath"

	"ge-pipeline/internal/logger"
)

// Source describes one CSV file and its destination table.
type Source struct {
	Table           string
	Path            string // relative to the project directory
	LowercaseHeader bool
}

// DefaultSources are the two fixed source files of the tutorial warehouse.
// npi_small ships with upper-case headers and gets lowered on load;
// state_abbreviations is loaded as-is.
func DefaultSources() []Source {
	return []Source{
		{Table: "npi_small", Path: filepath.Join("data", "npi_small.csv"), LowercaseHeader: true},
		{Table: "state_abbreviations", Path: filepath.Join("data", "state_abbreviations.csv")},
	}
}

// TableReplacer is the warehouse operation the loader needs. Satisfied by
// *warehouse.Conn.
type TableReplacer interface {
	ReplaceTable(ctx context.Context, table string, cols []string, rows [][]string, onRow func()) error
}

// Loader replaces warehouse tables with the contents of project CSV files.
type Loader struct {
	log        logger.Logger
	conn       TableReplacer
	projectDir string
}

func New(log logger.Logger, conn TableReplacer, projectDir string) *Loader {
	return &Loader{log: log, conn: conn, projectDir: projectDir}
}

// Read parses one source CSV. Callers that need the row count before loading
// (progress bars) read once and hand the result to LoadFile so the file is
// not parsed a second time.
func (l *Loader) Read(src Source) (*CSVFile, error) {
	return ReadCSV(filepath.Join(l.projectDir, src.Path), src.LowercaseHeader)
}

// LoadFile replaces the destination table of one source with an already
// parsed CSV (full replace semantics: drop then recreate, no append, no
// merge). It returns the number of data rows loaded. onRow, if non-nil, is
// called per inserted row so callers can drive a progress bar.
func (l *Loader) LoadFile(ctx context.Context, src Source, f *CSVFile, onRow func()) (int, error) {
	l.log.Info("loading ", src.Path, " into table ", src.Table)

	if err := l.conn.ReplaceTable(ctx, src.Table, f.Header, f.Rows, onRow); err != nil {
		return 0, err
	}

	l.log.Info("loaded ", len(f.Rows), " rows into ", src.Table)
	return len(f.Rows), nil
}

// Load reads and loads one source in a single call.
func (l *Loader) Load(ctx context.Context, src Source, onRow func()) (int, error) {
	f, err := l.Read(src)
	if err != nil {
		return 0, err
	}
	return l.LoadFile(ctx, src, f, onRow)
}
