package index

import (
	"sort"

	"github.com/csvql/csvql/internal/value"
)

// Entry pairs a cell value with the id of the row it came from.
type Entry struct {
	Value value.Value
	RowID int
}

// ColumnIndex is a sorted-array index over one column: every (value,
// row id) pair of the column, ordered ascending by value with ties
// broken by row id. Built once at load time, read-only afterwards.
//
// The sorted array trades write performance for simplicity: any insert
// would cost O(n). That is acceptable here because the store never
// changes after load.
type ColumnIndex struct {
	Column  string
	Kind    value.Kind
	Entries []Entry
}

// checkKind guards every lookup: comparing a literal of the wrong kind
// against the column is a TypeMismatchError, not an empty result.
func (ix *ColumnIndex) checkKind(v value.Value) error {
	if v.Kind != ix.Kind {
		return NewTypeMismatch(ix.Column, ix.Kind, v.Kind)
	}
	return nil
}

// search returns the position of the first entry whose value is >= v
// (pred false) or > v (pred true handled by caller via searchAfter).
func (ix *ColumnIndex) searchFirstGE(v value.Value) int {
	return sort.Search(len(ix.Entries), func(i int) bool {
		return ix.Entries[i].Value.Compare(v) >= 0
	})
}

func (ix *ColumnIndex) searchFirstGT(v value.Value) int {
	return sort.Search(len(ix.Entries), func(i int) bool {
		return ix.Entries[i].Value.Compare(v) > 0
	})
}

// Equal returns the row ids whose value equals v, in index order.
// An empty result is not an error.
func (ix *ColumnIndex) Equal(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	var rows []int
	for i := ix.searchFirstGE(v); i < len(ix.Entries); i++ {
		if !ix.Entries[i].Value.Equal(v) {
			break
		}
		rows = append(rows, ix.Entries[i].RowID)
	}
	return rows, nil
}

// Greater returns the row ids whose value is strictly greater than v,
// in ascending-value index order.
func (ix *ColumnIndex) Greater(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	return ix.collect(ix.searchFirstGT(v), len(ix.Entries)), nil
}

// GreaterOrEqual returns the row ids whose value is >= v.
func (ix *ColumnIndex) GreaterOrEqual(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	return ix.collect(ix.searchFirstGE(v), len(ix.Entries)), nil
}

// Less returns the row ids whose value is strictly less than v.
func (ix *ColumnIndex) Less(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	return ix.collect(0, ix.searchFirstGE(v)), nil
}

// LessOrEqual returns the row ids whose value is <= v.
func (ix *ColumnIndex) LessOrEqual(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	return ix.collect(0, ix.searchFirstGT(v)), nil
}

// NotEqual returns the row ids whose value differs from v. This is the
// one lookup that cannot narrow by binary search, it walks the whole
// index and skips the equal run.
func (ix *ColumnIndex) NotEqual(v value.Value) ([]int, error) {
	if err := ix.checkKind(v); err != nil {
		return nil, err
	}
	var rows []int
	for _, e := range ix.Entries {
		if !e.Value.Equal(v) {
			rows = append(rows, e.RowID)
		}
	}
	return rows, nil
}

func (ix *ColumnIndex) collect(from, to int) []int {
	if from >= to {
		return nil
	}
	rows := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		rows = append(rows, ix.Entries[i].RowID)
	}
	return rows
}
