// Package storage loads external datasets into the column store.
// The header row names the columns; per-column types are inferred
// from the data: a column is INTEGER only when every one of its cells
// is a digit run that fits in int64, otherwise the whole column is
// TEXT and every cell is kept verbatim.
package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/csvql/csvql/internal/table"
	"github.com/csvql/csvql/internal/value"
)

// LoadCSV reads a CSV dataset into an immutable ColumnStore.
func LoadCSV(r io.Reader, logger *slog.Logger) (*table.ColumnStore, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv already enforces a uniform field count
			return nil, fmt.Errorf("reading csv row %d: %w", len(raw), err)
		}
		raw = append(raw, record)
	}

	kinds := inferKinds(header, raw)

	records := make([]table.Record, len(raw))
	for i, cells := range raw {
		rec := make(table.Record, len(header))
		for j, name := range header {
			if kinds[j] == value.KindInteger {
				rec[name] = value.Parse(cells[j])
			} else {
				rec[name] = value.NewText(cells[j])
			}
		}
		records[i] = rec
	}

	store, err := table.Build(header, records)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("dataset loaded",
			slog.Int("columns", len(header)),
			slog.Int("rows", store.RowCount()))
	}

	return store, nil
}

// LoadCSVFile opens and loads a CSV file by path.
func LoadCSVFile(path string, logger *slog.Logger) (*table.ColumnStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, logger)
}

// inferKinds decides each column's kind by scanning every cell: one
// non-integer cell makes the column TEXT. A column with no rows
// defaults to TEXT.
func inferKinds(header []string, raw [][]string) []value.Kind {
	kinds := make([]value.Kind, len(header))
	for j := range header {
		kind := value.KindText
		if len(raw) > 0 {
			kind = value.KindInteger
			for _, cells := range raw {
				if j >= len(cells) || value.Parse(cells[j]).Kind != value.KindInteger {
					kind = value.KindText
					break
				}
			}
		}
		kinds[j] = kind
	}
	return kinds
}
