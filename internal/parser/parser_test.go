package parser

import (
	"testing"

	"github.com/csvql/csvql/internal/parser/lexer"
	"github.com/csvql/csvql/internal/value"
)

func TestParseProjectionAndFilter(t *testing.T) {
	input := "PROJECT col1, col2 FILTER col3 > 'value'"
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}

	stmt, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(stmt.Fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(stmt.Fields))
	}
	if stmt.Fields[0].Value != "col1" {
		t.Errorf("Expected field 0 to be col1, got %s", stmt.Fields[0].Value)
	}
	if stmt.Fields[1].Value != "col2" {
		t.Errorf("Expected field 1 to be col2, got %s", stmt.Fields[1].Value)
	}

	if stmt.Filter == nil {
		t.Fatal("Expected filter clause, got nil")
	}
	if stmt.Filter.Column.Value != "col3" {
		t.Errorf("Expected filter column col3, got %s", stmt.Filter.Column.Value)
	}
	if stmt.Filter.Operator != ">" {
		t.Errorf("Expected operator >, got %s", stmt.Filter.Operator)
	}
	if !stmt.Filter.Value.Value.Equal(value.NewText("value")) {
		t.Errorf("Expected literal 'value', got %v", stmt.Filter.Value.Value)
	}
}

func TestParseEqualityFilterWithNumber(t *testing.T) {
	tokens, err := lexer.Tokenize("PROJECT city_name FILTER population_size = 2000000")
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}

	stmt, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if stmt.Filter.Operator != "=" {
		t.Errorf("Expected operator =, got %s", stmt.Filter.Operator)
	}
	if !stmt.Filter.Value.Value.Equal(value.NewInteger(2000000)) {
		t.Errorf("Expected integer literal 2000000, got %v", stmt.Filter.Value.Value)
	}
}

func TestParseBareWordLiteralIsText(t *testing.T) {
	tokens, err := lexer.Tokenize("PROJECT column1 FILTER column1 > bbb")
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}

	stmt, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !stmt.Filter.Value.Value.Equal(value.NewText("bbb")) {
		t.Errorf("Expected text literal bbb, got %v", stmt.Filter.Value.Value)
	}
}

func TestParseProjectionOnly(t *testing.T) {
	tokens, err := lexer.Tokenize("PROJECT col1")
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}

	stmt, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(stmt.Fields) != 1 || stmt.Fields[0].Value != "col1" {
		t.Errorf("Expected single field col1, got %v", stmt.Fields)
	}
	if stmt.Filter != nil {
		t.Errorf("Expected no filter, got %v", stmt.Filter)
	}
}

func TestParseWildcard(t *testing.T) {
	tokens, err := lexer.Tokenize("PROJECT *")
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}

	stmt, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !stmt.Wildcard() {
		t.Errorf("Expected wildcard projection, got %v", stmt.Fields)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"typo in PROJECT", "PROJEKT col1"},
		{"typo in FILTER", "PROJECT col1 FILTRE col2 > 1"},
		{"empty column list", "PROJECT FILTER col2 > 1"},
		{"missing operator", "PROJECT col1 FILTER col2 1"},
		{"missing literal", "PROJECT col1 FILTER col2 >"},
		{"trailing comma", "PROJECT col1,"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Lexer error: %v", err)
			}
			if _, err := New(tokens).Parse(); err == nil {
				t.Errorf("Expected parse error for %q, got nil", tt.input)
			}
		})
	}
}
