package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/csvql/csvql/internal/table"
	"github.com/csvql/csvql/internal/value"
)

// LoadParquetFile reads a Parquet dataset into an immutable
// ColumnStore. Rows are decoded as generic maps; integer physical
// types become INTEGER columns, everything else is rendered as TEXT.
func LoadParquetFile(path string, logger *slog.Logger) (*table.ColumnStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	var header []string
	for _, field := range pqFile.Schema().Fields() {
		header = append(header, field.Name())
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	var records []table.Record
	for {
		row := make(map[string]interface{})
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(records), err)
		}

		rec := make(table.Record, len(row))
		for name, raw := range row {
			rec[name] = convertParquetValue(raw)
		}
		records = append(records, rec)
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

// convertParquetValue maps a decoded parquet cell onto the engine's
// closed value union.
func convertParquetValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case int:
		return value.NewInteger(int64(v))
	case int32:
		return value.NewInteger(int64(v))
	case int64:
		return value.NewInteger(v)
	case uint32:
		return value.NewInteger(int64(v))
	case string:
		return value.NewText(v)
	case []byte:
		return value.NewText(string(v))
	case bool:
		return value.NewText(strconv.FormatBool(v))
	case float32:
		return value.NewText(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return value.NewText(strconv.FormatFloat(v, 'g', -1, 64))
	case nil:
		return value.NewText("")
	default:
		return value.NewText(fmt.Sprintf("%v", v))
	}
}
