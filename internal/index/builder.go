package index

import (
	"log/slog"
	"sort"

	"github.com/csvql/csvql/internal/table"
)

// Build creates the sorted-array index for one column: copy every
// (value, row id) pair, then sort by the composite key (value, row id)
// so equal values keep a deterministic row order. O(n log n) time,
// O(n) extra space.
func Build(col *table.Column) *ColumnIndex {
	entries := make([]Entry, len(col.Values))
	for rowID, v := range col.Values {
		entries[rowID] = Entry{Value: v, RowID: rowID}
	}

	sort.Slice(entries, func(i, j int) bool {
		c := entries[i].Value.Compare(entries[j].Value)
		if c != 0 {
			return c < 0
		}
		return entries[i].RowID < entries[j].RowID
	})

	return &ColumnIndex{
		Column:  col.Name,
		Kind:    col.Kind,
		Entries: entries,
	}
}

// BuildAll builds one index per column of the store, eagerly. There is
// no lazy or partial indexing: the dataset is read-only, so paying the
// full build cost once at load time keeps every later lookup simple.
func BuildAll(store *table.ColumnStore, logger *slog.Logger) map[string]*ColumnIndex {
	indexes := make(map[string]*ColumnIndex, len(store.Columns()))

	for _, name := range store.Columns() {
		col, err := store.Column(name)
		if err != nil {
			// Columns() only returns names the store owns
			continue
		}
		idx := Build(col)
		indexes[name] = idx

		if logger != nil {
			logger.Debug("index built",
				slog.String("column", name),
				slog.String("kind", col.Kind.String()),
				slog.Int("entries", len(idx.Entries)))
		}
	}

	return indexes
}
