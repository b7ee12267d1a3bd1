package table

import (
	"github.com/csvql/csvql/internal/value"
)

// Record is one input row as produced by a loader.
// Key = column name, Value = typed cell value.
type Record map[string]value.Value

// Column holds every cell of one column, dense by row id.
type Column struct {
	Name   string
	Kind   value.Kind
	Values []value.Value
}

// ColumnStore is the immutable column-major table. It is built once at
// load time and never mutated afterwards, so it can be shared freely.
type ColumnStore struct {
	columns map[string]*Column
	order   []string
	rows    int
}

// Build constructs a ColumnStore from named-field records. The header
// fixes column order; every record must carry exactly the header's
// fields and every column must hold a single kind. On any violation a
// SchemaError is returned and no store is produced.
func Build(header []string, records []Record) (*ColumnStore, error) {
	store := &ColumnStore{
		columns: make(map[string]*Column, len(header)),
		order:   make([]string, 0, len(header)),
		rows:    len(records),
	}

	for _, name := range header {
		if _, exists := store.columns[name]; exists {
			return nil, NewDuplicateColumn(name)
		}
		store.columns[name] = &Column{
			Name:   name,
			Values: make([]value.Value, 0, len(records)),
		}
		store.order = append(store.order, name)
	}

	for rowID, rec := range records {
		if len(rec) != len(header) {
			return nil, NewFieldSetMismatch(rowID, len(header), len(rec))
		}
		for _, name := range header {
			val, ok := rec[name]
			if !ok {
				return nil, NewMissingField(rowID, name)
			}
			col := store.columns[name]
			if len(col.Values) == 0 {
				col.Kind = val.Kind
			} else if val.Kind != col.Kind {
				return nil, NewMixedKinds(rowID, name, col.Kind, val.Kind)
			}
			col.Values = append(col.Values, val)
		}
	}

	return store, nil
}

// Column returns the named column or a ColumnNotFoundError.
func (s *ColumnStore) Column(name string) (*Column, error) {
	col, ok := s.columns[name]
	if !ok {
		return nil, NewColumnNotFound(name)
	}
	return col, nil
}

// Columns returns the column names in their natural (header) order.
func (s *ColumnStore) Columns() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// RowCount returns the number of rows shared by every column.
func (s *ColumnStore) RowCount() int {
	return s.rows
}
