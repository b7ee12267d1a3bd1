package parser

import (
	"fmt"

	"github.com/csvql/csvql/internal/parser/ast"
	"github.com/csvql/csvql/internal/parser/lexer"
	"github.com/csvql/csvql/internal/value"
)

// Parser turns a token stream into a query statement. It only checks
// lexical shape - whether the referenced columns exist is the
// executor's job.
type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) Parse() (*ast.QueryStatement, error) {
	if p.curTok.Type != lexer.PROJECT {
		return nil, fmt.Errorf("expected PROJECT, got %q", p.curTok.Literal)
	}
	p.nextToken()

	stmt := &ast.QueryStatement{}

	fields, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	stmt.Fields = fields

	// FILTER (Optional)
	if p.curTok.Type == lexer.FILTER {
		p.nextToken()
		filter, err := p.parseFilterClause()
		if err != nil {
			return nil, err
		}
		stmt.Filter = filter
	}

	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected trailing input %q", p.curTok.Literal)
	}

	return stmt, nil
}

func (p *Parser) parseIdentifierList() ([]*ast.Identifier, error) {
	var identifiers []*ast.Identifier

	// PROJECT * projects every column
	if p.curTok.Type == lexer.ASTERISK {
		identifiers = append(identifiers, &ast.Identifier{TokenLiteralValue: "*", Value: "*"})
		p.nextToken()
		return identifiers, nil
	}

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, fmt.Errorf("expected column name, got %q", p.curTok.Literal)
	}
	identifiers = append(identifiers, &ast.Identifier{TokenLiteralValue: p.curTok.Literal, Value: p.curTok.Literal})
	p.nextToken()

	for p.curTok.Type == lexer.COMMA {
		p.nextToken()
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, fmt.Errorf("expected column name after comma, got %q", p.curTok.Literal)
		}
		identifiers = append(identifiers, &ast.Identifier{TokenLiteralValue: p.curTok.Literal, Value: p.curTok.Literal})
		p.nextToken()
	}

	return identifiers, nil
}

func (p *Parser) parseFilterClause() (*ast.FilterClause, error) {
	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, fmt.Errorf("expected column name in FILTER, got %q", p.curTok.Literal)
	}
	column := &ast.Identifier{TokenLiteralValue: p.curTok.Literal, Value: p.curTok.Literal}
	p.nextToken()

	var operator string
	switch p.curTok.Type {
	case lexer.EQUALS, lexer.GREATER, lexer.LESS, lexer.GREATER_EQUALS, lexer.LESS_EQUALS, lexer.NOT_EQUALS:
		operator = p.curTok.Literal
	default:
		return nil, fmt.Errorf("expected comparison operator in FILTER, got %q", p.curTok.Literal)
	}
	p.nextToken()

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &ast.FilterClause{Column: column, Operator: operator, Value: lit}, nil
}

// parseLiteral accepts a quoted string (always Text), a digit run
// (Integer, degrading to Text on int64 overflow) or a bare word (Text).
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	var lit *ast.Literal

	switch p.curTok.Type {
	case lexer.STRING:
		lit = &ast.Literal{TokenLiteralValue: p.curTok.Literal, Value: value.NewText(p.curTok.Literal)}
	case lexer.NUMBER:
		lit = &ast.Literal{TokenLiteralValue: p.curTok.Literal, Value: value.Parse(p.curTok.Literal)}
	case lexer.IDENTIFIER:
		lit = &ast.Literal{TokenLiteralValue: p.curTok.Literal, Value: value.NewText(p.curTok.Literal)}
	default:
		return nil, fmt.Errorf("expected literal value in FILTER, got %q", p.curTok.Literal)
	}

	p.nextToken()
	return lit, nil
}
