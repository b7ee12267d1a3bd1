package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/csvql/csvql/internal/engine"
	"github.com/csvql/csvql/internal/index"
	"github.com/csvql/csvql/internal/logging"
	"github.com/csvql/csvql/internal/repl"
	"github.com/csvql/csvql/internal/storage"
	"github.com/csvql/csvql/internal/table"
)

var formatFlag = flag.String("format", "", "Input format: csv or parquet (default: by file extension)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <dataset.csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Loads a dataset into memory and answers PROJECT/FILTER queries interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s cities.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format parquet cities.pq\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nQueries:\n")
		fmt.Fprintf(os.Stderr, "  PROJECT city_name, population_size FILTER population_size > 1000000\n")
		fmt.Fprintf(os.Stderr, "  PROJECT * FILTER dominant_language = 'German'\n")
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing dataset file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	store, err := loadStore(path, *formatFlag, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", path, "error", err)
		closeFn()
		os.Exit(1)
	}

	indexes := index.BuildAll(store, logger)
	logger.Info("ready",
		"path", path,
		"rows", store.RowCount(),
		"columns", len(store.Columns()),
		"indexes", len(indexes))

	eng := engine.New(store, indexes)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	repl.Start(eng)
}

// loadStore picks the loader from the -format flag, falling back to
// the file extension.
func loadStore(path, format string, logger *slog.Logger) (*table.ColumnStore, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".parquet", ".pq":
			format = "parquet"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		return storage.LoadCSVFile(path, logger)
	case "parquet":
		return storage.LoadParquetFile(path, logger)
	default:
		return nil, fmt.Errorf("unsupported format %q (want csv or parquet)", format)
	}
}
