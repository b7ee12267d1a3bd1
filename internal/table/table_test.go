package table

import (
	"errors"
	"testing"

	"github.com/csvql/csvql/internal/value"
)

func cityRecords() ([]string, []Record) {
	header := []string{"city_name", "population_size", "dominant_language"}
	records := []Record{
		{
			"city_name":         value.NewText("Berlin"),
			"population_size":   value.NewInteger(3000000),
			"dominant_language": value.NewText("German"),
		},
		{
			"city_name":         value.NewText("Paris"),
			"population_size":   value.NewInteger(2000000),
			"dominant_language": value.NewText("French"),
		},
	}
	return header, records
}

func TestBuild(t *testing.T) {
	header, records := cityRecords()

	store, err := Build(header, records)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if store.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", store.RowCount())
	}

	cols := store.Columns()
	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(cols))
	}
	for i, want := range header {
		if cols[i] != want {
			t.Errorf("Column %d: expected %s, got %s", i, want, cols[i])
		}
	}

	pop, err := store.Column("population_size")
	if err != nil {
		t.Fatalf("Column error: %v", err)
	}
	if pop.Kind != value.KindInteger {
		t.Errorf("Expected INTEGER column, got %s", pop.Kind)
	}
	if !pop.Values[0].Equal(value.NewInteger(3000000)) {
		t.Errorf("Expected 3000000 at row 0, got %v", pop.Values[0])
	}
	if !pop.Values[1].Equal(value.NewInteger(2000000)) {
		t.Errorf("Expected 2000000 at row 1, got %v", pop.Values[1])
	}
}

func TestBuildEmpty(t *testing.T) {
	store, err := Build([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if store.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", store.RowCount())
	}
}

func TestBuildRejectsMixedKinds(t *testing.T) {
	header := []string{"a"}
	records := []Record{
		{"a": value.NewInteger(1)},
		{"a": value.NewText("x")},
	}

	_, err := Build(header, records)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
	if schemaErr.Column != "a" {
		t.Errorf("Expected column a, got %q", schemaErr.Column)
	}
	if schemaErr.RowIndex != 1 {
		t.Errorf("Expected row 1, got %d", schemaErr.RowIndex)
	}
}

func TestBuildRejectsInconsistentFieldSets(t *testing.T) {
	header := []string{"a", "b"}
	records := []Record{
		{"a": value.NewInteger(1), "b": value.NewInteger(2)},
		{"a": value.NewInteger(3)},
	}

	_, err := Build(header, records)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
}

func TestBuildRejectsRenamedField(t *testing.T) {
	header := []string{"a", "b"}
	records := []Record{
		{"a": value.NewInteger(1), "c": value.NewInteger(2)},
	}

	_, err := Build(header, records)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
	if schemaErr.Column != "b" {
		t.Errorf("Expected column b, got %q", schemaErr.Column)
	}
}

func TestBuildRejectsDuplicateHeader(t *testing.T) {
	_, err := Build([]string{"a", "a"}, nil)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
}

func TestColumnNotFound(t *testing.T) {
	header, records := cityRecords()
	store, err := Build(header, records)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	_, err = store.Column("elevation")
	var notFound *ColumnNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected ColumnNotFoundError, got %v", err)
	}
	if notFound.Column != "elevation" {
		t.Errorf("Expected elevation, got %s", notFound.Column)
	}
}
