package parser

import (
	"fmt"
)

// ParseError describes the first failure encountered while parsing. Offset
// is the byte position in the original input at which the failure was
// detected; Message is a fixed human-readable description.
type ParseError struct {
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

func errorAt(offset int, message string) *ParseError {
	return &ParseError{Message: message, Offset: offset}
}
