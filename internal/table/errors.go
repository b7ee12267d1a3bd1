package table

import (
	"fmt"

	"github.com/csvql/csvql/internal/value"
)

// SchemaError reports input that cannot form a consistent column store:
// ragged records, missing or duplicate fields, or mixed kinds within a
// single column. It is fatal to the load, no partial store is returned.
type SchemaError struct {
	Column   string // offending column ("" for record-level problems)
	RowIndex int    // 0-based data row (-1 if not tied to a row)
	Reason   string
}

func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Column != "" {
		msg += fmt.Sprintf(" in column %q", e.Column)
	}
	if e.RowIndex >= 0 {
		msg += fmt.Sprintf(" at row %d", e.RowIndex)
	}
	return msg + " - " + e.Reason
}

func NewDuplicateColumn(column string) *SchemaError {
	return &SchemaError{
		Column:   column,
		RowIndex: -1,
		Reason:   "duplicate column name in header",
	}
}

func NewFieldSetMismatch(rowIndex, want, got int) *SchemaError {
	return &SchemaError{
		RowIndex: rowIndex,
		Reason:   fmt.Sprintf("record has %d fields, header has %d", got, want),
	}
}

func NewMissingField(rowIndex int, column string) *SchemaError {
	return &SchemaError{
		Column:   column,
		RowIndex: rowIndex,
		Reason:   "record is missing the field",
	}
}

func NewMixedKinds(rowIndex int, column string, want, got value.Kind) *SchemaError {
	return &SchemaError{
		Column:   column,
		RowIndex: rowIndex,
		Reason:   fmt.Sprintf("expected %s, got %s", want, got),
	}
}

// ColumnNotFoundError reports a reference to a column absent from the
// schema. It is a per-query error, the store stays usable.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %s", e.Column)
}

func NewColumnNotFound(column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Column: column}
}
