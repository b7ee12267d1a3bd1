package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/csvql/csvql/internal/engine"
	"github.com/csvql/csvql/internal/executor"
)

// Start runs the interactive query loop until EOF or an exit command.
// Erroring queries print a diagnostic and the loop continues.
func Start(eng *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Loaded %d rows. Type 'columns' to inspect the schema, 'exit' or '\\q' to quit.\n", eng.RowCount())

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		if line == "columns" {
			PrintSchema(os.Stdout, eng.Columns())
			continue
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		PrintResult(os.Stdout, result)
	}
}

// PrintResult renders a result set as an ASCII table.
func PrintResult(w io.Writer, res *executor.Result) {
	if len(res.Columns) > 0 {
		tw := tablewriter.NewWriter(w)
		// Column names are case-sensitive, keep them verbatim
		tw.SetAutoFormatHeaders(false)

		header := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			if i < len(res.Metadata) {
				header[i] = fmt.Sprintf("%s (%s)", col, res.Metadata[i].Kind)
			} else {
				header[i] = col
			}
		}
		tw.SetHeader(header)

		for _, row := range res.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = v.String()
			}
			tw.Append(cells)
		}
		tw.Render()
	}

	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
}

// PrintSchema lists the loaded columns and their kinds.
func PrintSchema(w io.Writer, columns []executor.ColumnMetadata) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"column", "type"})
	for _, col := range columns {
		tw.Append([]string{col.Name, col.Kind.String()})
	}
	tw.Render()
}
