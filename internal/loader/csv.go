package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVFile holds one parsed CSV: the header row and all data rows.
type CSVFile struct {
	Header []string
	Rows   [][]string
}

// ReadCSV parses the file at path. The first record is the header; every data
// row must have the same field count (enforced by encoding/csv). With
// lowercaseHeader set, header names are lowered before they become column
// names, matching how the npi_small source is loaded.
func ReadCSV(path string, lowercaseHeader bool) (*CSVFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err // keep the fs error intact, missing files are fatal upstream
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", path, err)
	}

	for i, h := range header {
		h = strings.TrimSpace(h)
		if lowercaseHeader {
			h = strings.ToLower(h)
		}
		header[i] = h
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row from %s: %w", path, err)
		}
		rows = append(rows, rec)
	}

	return &CSVFile{Header: header, Rows: rows}, nil
}
