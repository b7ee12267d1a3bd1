package executor

import (
	"fmt"

	"github.com/csvql/csvql/internal/index"
	"github.com/csvql/csvql/internal/parser/ast"
	"github.com/csvql/csvql/internal/table"
	"github.com/csvql/csvql/internal/value"
)

// ColumnMetadata describes one result column for display purposes
type ColumnMetadata struct {
	Name string
	Kind value.Kind
}

// Result is an ordered set of rows, each row holding one value per
// projected column, in projection order.
type Result struct {
	Columns  []string
	Metadata []ColumnMetadata
	Rows     [][]value.Value
	Message  string
}

// Execute runs a parsed query against the store. It is a pure read:
// the store and indexes are never touched beyond lookups, and every
// failure is a returned error, never a partial result.
//
// Row order follows discovery order - index order (ascending value,
// ties by row id) for filtered queries, natural row id order otherwise.
func Execute(stmt *ast.QueryStatement, store *table.ColumnStore, indexes map[string]*index.ColumnIndex) (*Result, error) {
	rowIDs, err := matchRows(stmt.Filter, store, indexes)
	if err != nil {
		return nil, err
	}

	projected, err := resolveProjection(stmt, store)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(projected))
	metadata := make([]ColumnMetadata, len(projected))
	for i, col := range projected {
		columns[i] = col.Name
		metadata[i] = ColumnMetadata{Name: col.Name, Kind: col.Kind}
	}

	rows := make([][]value.Value, 0, len(rowIDs))
	for _, rowID := range rowIDs {
		row := make([]value.Value, len(projected))
		for i, col := range projected {
			row[i] = col.Values[rowID]
		}
		rows = append(rows, row)
	}

	return &Result{
		Columns:  columns,
		Metadata: metadata,
		Rows:     rows,
		Message:  fmt.Sprintf("Returned %d rows", len(rows)),
	}, nil
}

// matchRows resolves the filter clause into row ids. Without a filter
// every row matches, in ascending row id order.
func matchRows(filter *ast.FilterClause, store *table.ColumnStore, indexes map[string]*index.ColumnIndex) ([]int, error) {
	if filter == nil {
		rowIDs := make([]int, store.RowCount())
		for i := range rowIDs {
			rowIDs[i] = i
		}
		return rowIDs, nil
	}

	col, err := store.Column(filter.Column.Value)
	if err != nil {
		return nil, err
	}

	idx, ok := indexes[col.Name]
	if !ok {
		// No index registered for this column, fall back to a scan
		return scanRows(col, filter.Operator, filter.Value.Value)
	}

	switch filter.Operator {
	case "=":
		return idx.Equal(filter.Value.Value)
	case ">":
		return idx.Greater(filter.Value.Value)
	case "<":
		return idx.Less(filter.Value.Value)
	case ">=":
		return idx.GreaterOrEqual(filter.Value.Value)
	case "<=":
		return idx.LessOrEqual(filter.Value.Value)
	case "!=":
		return idx.NotEqual(filter.Value.Value)
	default:
		return nil, NewUnsupportedOperator(filter.Operator, col.Name)
	}
}

// scanRows is the index-less fallback: sequential compare over the
// column, matches in ascending row id order.
func scanRows(col *table.Column, operator string, literal value.Value) ([]int, error) {
	if literal.Kind != col.Kind {
		return nil, index.NewTypeMismatch(col.Name, col.Kind, literal.Kind)
	}

	var match func(c int) bool
	switch operator {
	case "=":
		match = func(c int) bool { return c == 0 }
	case ">":
		match = func(c int) bool { return c > 0 }
	case "<":
		match = func(c int) bool { return c < 0 }
	case ">=":
		match = func(c int) bool { return c >= 0 }
	case "<=":
		match = func(c int) bool { return c <= 0 }
	case "!=":
		match = func(c int) bool { return c != 0 }
	default:
		return nil, NewUnsupportedOperator(operator, col.Name)
	}

	var rowIDs []int
	for rowID, v := range col.Values {
		if match(v.Compare(literal)) {
			rowIDs = append(rowIDs, rowID)
		}
	}
	return rowIDs, nil
}

// resolveProjection maps the requested fields onto store columns. An
// empty list or "*" projects every column in natural order. Unknown
// names fail before any row is materialized.
func resolveProjection(stmt *ast.QueryStatement, store *table.ColumnStore) ([]*table.Column, error) {
	var names []string
	if len(stmt.Fields) == 0 || stmt.Wildcard() {
		names = store.Columns()
	} else {
		names = make([]string, len(stmt.Fields))
		for i, f := range stmt.Fields {
			names[i] = f.Value
		}
	}

	columns := make([]*table.Column, len(names))
	for i, name := range names {
		col, err := store.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return columns, nil
}
