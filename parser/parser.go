package parser

import (
	"io"
	"strconv"

	"github.com/go-sexp/sexp/ast"
)

// Parser reads successive top-level expressions from a single input
// buffer. It carries no state besides the cursor, so independent Parsers
// over independent buffers are safe to use concurrently.
type Parser struct {
	s scanner
}

// New returns a Parser positioned at the start of src. The buffer is only
// ever read, never modified.
func New(src []byte) *Parser {
	return &Parser{s: scanner{src: src}}
}

// Offset returns the byte position of the cursor: the first byte not yet
// consumed by a previous call to Next. Callers that require the whole
// buffer to be consumed can compare it against the input length.
func (p *Parser) Offset() int {
	return p.s.off
}

// Next skips leading whitespace and parses one expression. It returns
// io.EOF once the remaining input holds nothing but whitespace.
func (p *Parser) Next() (ast.Expr, error) {
	p.s.skipWhitespace()
	if _, ok := p.s.peek(); !ok {
		return nil, io.EOF
	}

	expr, err := p.parseToken()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseToken dispatches on a single byte of lookahead. The numeric branch
// must be tried before the symbol branch: "-5" is a number while "->" is a
// symbol, and both start with an operator byte.
func (p *Parser) parseToken() (ast.Expr, *ParseError) {
	c, ok := p.s.peek()
	switch {
	case !ok:
		return nil, errorAt(p.s.off, "unexpected end of stream")

	case c == '"':
		text, err := p.s.scanString()
		if err != nil {
			return nil, err
		}
		return ast.String(text), nil

	case isDigit(c) || (c == '+' || c == '-') && p.digitFollows():
		return p.parseNumber()

	case isAlpha(c) || isOperator(c):
		text, err := p.s.scanSymbol()
		if err != nil {
			return nil, err
		}
		return ast.Symbol(text), nil

	case c == '(':
		return p.parseList()

	default:
		return nil, errorAt(p.s.off, "unexpected character")
	}
}

// digitFollows reports whether the byte after the cursor is a digit,
// distinguishing a sign that starts a number from one that starts a symbol.
func (p *Parser) digitFollows() bool {
	c, ok := p.s.peekAt(1)
	return ok && isDigit(c)
}

// parseNumber scans a numeric literal and converts it, trying a signed
// 64-bit integer first and falling back to a 64-bit float. Leading zeros
// are accepted; a literal with a decimal point, an exponent marker or an
// out-of-range integer value becomes a float.
func (p *Parser) parseNumber() (ast.Expr, *ParseError) {
	text, err := p.s.scanNumber()
	if err != nil {
		return nil, err
	}

	if i, convErr := strconv.ParseInt(text, 10, 64); convErr == nil {
		return ast.Int(i), nil
	}
	if f, convErr := strconv.ParseFloat(text, 64); convErr == nil {
		return ast.Float(f), nil
	}
	return nil, errorAt(p.s.off, "invalid number format")
}

// parseList consumes "(", then alternates between skipping whitespace and
// dispatching on the next element until the matching ")". An immediate ")"
// yields the empty list. Nesting depth is bounded only by the stack.
func (p *Parser) parseList() (ast.Expr, *ParseError) {
	c, ok := p.s.peek()
	if !ok {
		return nil, errorAt(p.s.off, "unexpected end of stream in list")
	}
	if c != '(' {
		return nil, errorAt(p.s.off, "expected opening parenthesis")
	}
	p.s.next()

	list := ast.List{}
	for {
		p.s.skipWhitespace()

		c, ok := p.s.peek()
		if !ok {
			return nil, errorAt(p.s.off, "unexpected end of stream in list")
		}
		if c == ')' {
			p.s.next()
			return list, nil
		}

		elem, err := p.parseToken()
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
	}
}

// Parse parses exactly one expression from the start of src, after leading
// whitespace. Bytes after the first expression are not examined; use
// ParseAll or a Parser when trailing content matters.
func Parse(src []byte) (ast.Expr, error) {
	p := New(src)
	expr, err := p.Next()
	if err == io.EOF {
		return nil, errorAt(p.s.off, "unexpected end of stream")
	}
	return expr, err
}

// ParseAll parses every top-level expression in src, in order.
func ParseAll(src []byte) ([]ast.Expr, error) {
	p := New(src)

	exprs := []ast.Expr{}
	for {
		expr, err := p.Next()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}
