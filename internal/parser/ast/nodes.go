package ast

import (
	"bytes"

	"github.com/csvql/csvql/internal/value"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents a standalone query statement
type Statement interface {
	Node
	statementNode()
}

// Identifier represents a column name
type Identifier struct {
	TokenLiteralValue string
	Value             string
}

func (i *Identifier) TokenLiteral() string { return i.TokenLiteralValue }
func (i *Identifier) String() string       { return i.Value }

// Literal represents a fixed filter operand. Quoted strings and bare
// words carry Text values, digit runs carry Integer values.
type Literal struct {
	TokenLiteralValue string
	Value             value.Value
}

func (l *Literal) TokenLiteral() string { return l.TokenLiteralValue }
func (l *Literal) String() string       { return l.TokenLiteralValue }

// FilterClause: FILTER column op literal
type FilterClause struct {
	Column   *Identifier
	Operator string
	Value    *Literal
}

func (f *FilterClause) String() string {
	return f.Column.String() + " " + f.Operator + " " + f.Value.String()
}

// QueryStatement: PROJECT col1, col2 [FILTER col op literal].
// A single "*" field projects every column.
type QueryStatement struct {
	Fields []*Identifier
	Filter *FilterClause
}

func (q *QueryStatement) statementNode()       {}
func (q *QueryStatement) TokenLiteral() string { return "PROJECT" }
func (q *QueryStatement) String() string {
	var out bytes.Buffer
	out.WriteString("PROJECT ")
	for i, f := range q.Fields {
		out.WriteString(f.String())
		if i < len(q.Fields)-1 {
			out.WriteString(", ")
		}
	}
	if q.Filter != nil {
		out.WriteString(" FILTER ")
		out.WriteString(q.Filter.String())
	}
	return out.String()
}

// Wildcard reports whether the statement projects all columns.
func (q *QueryStatement) Wildcard() bool {
	return len(q.Fields) == 1 && q.Fields[0].Value == "*"
}
