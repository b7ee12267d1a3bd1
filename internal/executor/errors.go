package executor

import "fmt"

// UnsupportedOperatorError reports a comparison operator the executor
// has no evaluation strategy for. Surfaced per-query.
type UnsupportedOperatorError struct {
	Operator string
	Column   string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q on column %q", e.Operator, e.Column)
}

func NewUnsupportedOperator(operator, column string) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{Operator: operator, Column: column}
}
