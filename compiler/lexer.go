package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer walks one source text and produces tokens on demand.
type lexer struct {
	input  string
	pos    int // byte offset of the current rune
	line   int
	column int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, column: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *lexer) skipSpaceAndComments() {
	for {
		r := l.peek()
		if unicode.IsSpace(r) {
			l.advance()
			continue
		}
		// Line comments run to end of line.
		if r == '/' && strings.HasPrefix(l.input[l.pos:], "//") {
			for l.peek() != '\n' && l.peek() != 0 {
				l.advance()
			}
			continue
		}
		return
	}
}

var singleTokens = map[rune]tokenKind{
	'(': tokenLParen, ')': tokenRParen,
	'{': tokenLBrace, '}': tokenRBrace,
	'[': tokenLBracket, ']': tokenRBracket,
	',': tokenComma, ';': tokenSemicolon,
	'=': tokenAssign,
	'+': tokenPlus, '-': tokenMinus,
	'*': tokenStar, '/': tokenSlash, '%': tokenPercent,
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// next returns the following token. The zero tokenKind (tokenEOF) is returned
// forever once the input is exhausted.
func (l *lexer) next() token {
	l.skipSpaceAndComments()
	line, column := l.line, l.column
	r := l.peek()
	if r == 0 {
		return token{kind: tokenEOF, line: line, column: column}
	}
	switch {
	case isIdentStart(r):
		start := l.pos
		for isIdentPart(l.peek()) {
			l.advance()
		}
		word := l.input[start:l.pos]
		if kind, ok := keywords[word]; ok {
			return token{kind: kind, literal: word, line: line, column: column}
		}
		return token{kind: tokenIdent, literal: word, line: line, column: column}
	case unicode.IsDigit(r):
		return l.number(line, column)
	case r == '"':
		return l.stringLiteral(line, column)
	case r == '\'':
		return l.charLiteral(line, column)
	}
	l.advance()
	if kind, ok := singleTokens[r]; ok {
		return token{kind: kind, literal: string(r), line: line, column: column}
	}
	return token{kind: tokenIllegal, literal: string(r), line: line, column: column}
}

func (l *lexer) number(line, column int) token {
	start := l.pos
	for unicode.IsDigit(l.peek()) {
		l.advance()
	}
	kind := tokenInt
	if l.peek() == '.' {
		// A dot must be followed by a digit to make a float literal.
		save := l.pos
		l.advance()
		if unicode.IsDigit(l.peek()) {
			kind = tokenFloat
			for unicode.IsDigit(l.peek()) {
				l.advance()
			}
		} else {
			l.pos = save
		}
	}
	return token{kind: kind, literal: l.input[start:l.pos], line: line, column: column}
}

func (l *lexer) stringLiteral(line, column int) token {
	l.advance() // opening quote
	var b strings.Builder
	for {
		r := l.peek()
		if r == 0 || r == '\n' {
			return token{kind: tokenIllegal, literal: "unterminated string", line: line, column: column}
		}
		l.advance()
		if r == '"' {
			break
		}
		if r == '\\' {
			esc, ok := l.escape()
			if !ok {
				return token{kind: tokenIllegal, literal: "bad escape in string", line: line, column: column}
			}
			b.WriteRune(esc)
			continue
		}
		b.WriteRune(r)
	}
	return token{kind: tokenString, literal: b.String(), line: line, column: column}
}

func (l *lexer) charLiteral(line, column int) token {
	l.advance() // opening quote
	r := l.peek()
	if r == 0 || r == '\'' || r == '\n' {
		return token{kind: tokenIllegal, literal: "empty char literal", line: line, column: column}
	}
	l.advance()
	if r == '\\' {
		esc, ok := l.escape()
		if !ok {
			return token{kind: tokenIllegal, literal: "bad escape in char", line: line, column: column}
		}
		r = esc
	}
	if l.peek() != '\'' {
		return token{kind: tokenIllegal, literal: "unterminated char literal", line: line, column: column}
	}
	l.advance()
	return token{kind: tokenChar, literal: string(r), line: line, column: column}
}

func (l *lexer) escape() (rune, bool) {
	r := l.peek()
	if r == 0 {
		return 0, false
	}
	l.advance()
	switch r {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '\'', '"':
		return r, true
	}
	return 0, false
}
