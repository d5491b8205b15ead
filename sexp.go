// Package sexp parses s-expression text into expression trees and encodes
// such trees back to canonical text.
//
// The format is deliberately small: atoms are 64-bit integers and floats,
// double-quoted strings with no escape sequences, and symbols; lists nest
// to arbitrary depth inside parentheses. Parsing never panics; every
// failure is reported as a *parser.ParseError carrying the byte offset at
// which it was detected.
package sexp

import (
	"github.com/go-sexp/sexp/ast"
	"github.com/go-sexp/sexp/parser"
)

// Parse parses a single expression from the start of in, after skipping
// leading whitespace. Input after the first expression is left unread; use
// ParseAll when the whole buffer matters.
func Parse(in []byte) (ast.Expr, error) {
	return parser.Parse(in)
}

// ParseAll parses every top-level expression in in, in order.
func ParseAll(in []byte) ([]ast.Expr, error) {
	return parser.ParseAll(in)
}

// Print returns the canonical text form of expr.
func Print(expr ast.Expr) string {
	return ast.Encode(expr)
}
