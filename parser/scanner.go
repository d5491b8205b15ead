package parser

// Byte classification is ASCII-only. Multibyte sequences survive inside
// string literals, where bytes are copied verbatim, but they can never
// start a token.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '~', '!', '@', '#', '$', '^',
		'&', '|', '_', '=', '<', '>', '?', '.', ':', '\\', '\'':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t'
}

// isSeparator reports whether c terminates the token before it without
// being part of it. The apostrophe is both an operator and a separator;
// which classification wins depends on the order of checks at each call
// site, and the scan functions below rely on that order: a symbol keeps
// consuming apostrophes while a numeric literal stops at one.
func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '{', '}', ',', '\'', '"':
		return true
	}
	return isWhitespace(c)
}

// scanner is a cursor over an input buffer. peek and next are the only
// routines that read or advance the offset, so when a scan fails the
// offset still points at the byte where scanning stopped. Each parse owns
// its scanner; nothing is shared across invocations.
type scanner struct {
	src []byte
	off int
}

// peek returns the byte at the cursor without advancing.
func (s *scanner) peek() (byte, bool) {
	return s.peekAt(0)
}

// peekAt returns the byte n positions past the cursor without advancing.
func (s *scanner) peekAt(n int) (byte, bool) {
	if s.off+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.off+n], true
}

// next returns the byte at the cursor and advances past it.
func (s *scanner) next() (byte, bool) {
	c, ok := s.peek()
	if ok {
		s.off++
	}
	return c, ok
}

func (s *scanner) skipWhitespace() {
	for {
		c, ok := s.peek()
		if !ok || !isWhitespace(c) {
			return
		}
		s.next()
	}
}

// scanNumber consumes the maximal run of numeric literal bytes: digits,
// signs, the decimal point and the exponent markers. The run ends at a
// separator or at end of input; any other byte is an error at its own
// offset. The raw text is returned without interpretation.
func (s *scanner) scanNumber() (string, *ParseError) {
	start := s.off
	for {
		c, ok := s.peek()
		if !ok {
			break
		}
		if c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E' || isDigit(c) {
			s.next()
			continue
		}
		if isSeparator(c) {
			break
		}
		return "", errorAt(s.off, "unexpected character in numeric literal")
	}
	return string(s.src[start:s.off]), nil
}

// scanString consumes a double-quoted string and returns the text strictly
// between the quotes. Bytes are copied verbatim: escape sequences are not
// interpreted, so a backslash is kept as-is and cannot protect a closing
// quote.
func (s *scanner) scanString() (string, *ParseError) {
	if c, ok := s.peek(); !ok || c != '"' {
		return "", errorAt(s.off, "expected opening quote")
	}
	s.next()

	start := s.off
	for {
		c, ok := s.next()
		if !ok {
			return "", errorAt(s.off, "unexpected end of stream in string")
		}
		if c == '"' {
			return string(s.src[start : s.off-1]), nil
		}
	}
}

// scanSymbol consumes a symbol: one alpha or operator byte followed by any
// run of alpha, operator or digit bytes. The terminating byte is left
// unconsumed for the caller.
func (s *scanner) scanSymbol() (string, *ParseError) {
	if c, ok := s.peek(); !ok || !(isAlpha(c) || isOperator(c)) {
		return "", errorAt(s.off, "expected alpha or operator character")
	}

	start := s.off
	for {
		c, ok := s.peek()
		if !ok || !(isAlpha(c) || isOperator(c) || isDigit(c)) {
			break
		}
		s.next()
	}
	return string(s.src[start:s.off]), nil
}
