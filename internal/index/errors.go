package index

import (
	"fmt"

	"github.com/csvql/csvql/internal/value"
)

// TypeMismatchError reports a filter literal whose kind disagrees with
// the indexed column's kind. Surfaced per-query, the index stays valid.
type TypeMismatchError struct {
	Column      string
	ColumnKind  value.Kind
	LiteralKind value.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch on column %q - column is %s, literal is %s",
		e.Column, e.ColumnKind, e.LiteralKind)
}

func NewTypeMismatch(column string, columnKind, literalKind value.Kind) *TypeMismatchError {
	return &TypeMismatchError{
		Column:      column,
		ColumnKind:  columnKind,
		LiteralKind: literalKind,
	}
}
