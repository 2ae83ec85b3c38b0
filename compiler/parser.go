package compiler

import (
	"strconv"
)

// parser is a single-pass recursive-descent parser over one source. Errors
// are reported into the shared diagnostics; the first error stops the parse
// of the current source.
type parser struct {
	lex    *lexer
	cur    token
	next   token
	source string
	diags  *Diagnostics
	failed bool
}

func newParser(src *Source, diags *Diagnostics) *parser {
	p := &parser{
		lex:    newLexer(src.Content()),
		source: src.Name(),
		diags:  diags,
	}
	p.cur = p.lex.next()
	p.next = p.lex.next()
	return p
}

func (p *parser) advance() {
	p.cur = p.next
	p.next = p.lex.next()
}

func (p *parser) errorf(tok token, format string, args ...any) {
	if !p.failed {
		p.diags.errorf(p.source, tok.line, tok.column, format, args...)
	}
	p.failed = true
}

func (p *parser) expect(kind tokenKind) token {
	tok := p.cur
	if tok.kind != kind {
		p.errorf(tok, "expected %s, found %s", kind, tok)
		return tok
	}
	p.advance()
	return tok
}

func (p *parser) pos() position {
	return position{line: p.cur.line, column: p.cur.column}
}

// parseFile consumes the whole source and returns its function declarations.
func (p *parser) parseFile() []*funcDecl {
	var decls []*funcDecl
	for p.cur.kind != tokenEOF && !p.failed {
		decls = append(decls, p.parseFuncDecl())
	}
	if p.failed {
		return nil
	}
	return decls
}

func (p *parser) parseFuncDecl() *funcDecl {
	pos := p.pos()
	public := false
	if p.cur.kind == tokenPub {
		public = true
		p.advance()
	}
	p.expect(tokenFn)
	name := p.expect(tokenIdent).literal
	p.expect(tokenLParen)
	var params []string
	for p.cur.kind != tokenRParen && !p.failed {
		params = append(params, p.expect(tokenIdent).literal)
		if p.cur.kind != tokenComma {
			break
		}
		p.advance()
	}
	p.expect(tokenRParen)
	body := p.parseBlock()
	return &funcDecl{name: name, public: public, params: params, body: body, pos: pos}
}

// parseBlock parses `{ stmt* tail? }`. An expression followed by a semicolon
// is a statement; an expression followed by the closing brace is the block's
// value.
func (p *parser) parseBlock() *blockExpr {
	pos := p.pos()
	p.expect(tokenLBrace)
	block := &blockExpr{pos: pos}
	for p.cur.kind != tokenRBrace && !p.failed {
		if p.cur.kind == tokenLet {
			letPos := p.pos()
			p.advance()
			name := p.expect(tokenIdent).literal
			p.expect(tokenAssign)
			value := p.parseExpr()
			p.expect(tokenSemicolon)
			block.stmts = append(block.stmts, &letStmt{name: name, value: value, pos: letPos})
			continue
		}
		exprPos := p.pos()
		value := p.parseExpr()
		switch p.cur.kind {
		case tokenSemicolon:
			p.advance()
			block.stmts = append(block.stmts, &exprStmt{value: value, pos: exprPos})
		case tokenRBrace:
			block.tail = value
		default:
			p.errorf(p.cur, "expected ; or }, found %s", p.cur)
		}
	}
	p.expect(tokenRBrace)
	return block
}

func (p *parser) parseExpr() expr {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() expr {
	left := p.parseMultiplicative()
	for p.cur.kind == tokenPlus || p.cur.kind == tokenMinus {
		op := p.cur.kind
		pos := p.pos()
		p.advance()
		right := p.parseMultiplicative()
		left = &binaryExpr{op: op, left: left, right: right, pos: pos}
	}
	return left
}

func (p *parser) parseMultiplicative() expr {
	left := p.parseUnary()
	for p.cur.kind == tokenStar || p.cur.kind == tokenSlash || p.cur.kind == tokenPercent {
		op := p.cur.kind
		pos := p.pos()
		p.advance()
		right := p.parseUnary()
		left = &binaryExpr{op: op, left: left, right: right, pos: pos}
	}
	return left
}

func (p *parser) parseUnary() expr {
	if p.cur.kind == tokenMinus {
		pos := p.pos()
		p.advance()
		operand := p.parseUnary()
		// Negation lowers to subtraction from zero of the matching kind.
		if f, ok := operand.(*floatLit); ok {
			return &floatLit{value: -f.value, pos: pos}
		}
		if i, ok := operand.(*intLit); ok {
			return &intLit{value: -i.value, pos: pos}
		}
		return &binaryExpr{op: tokenMinus, left: &intLit{value: 0, pos: pos}, right: operand, pos: pos}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() expr {
	tok := p.cur
	pos := position{line: tok.line, column: tok.column}
	switch tok.kind {
	case tokenInt:
		p.advance()
		v, err := strconv.ParseInt(tok.literal, 10, 64)
		if err != nil {
			p.errorf(tok, "integer literal %s out of range", tok.literal)
			return &intLit{pos: pos}
		}
		return &intLit{value: v, pos: pos}
	case tokenFloat:
		p.advance()
		v, err := strconv.ParseFloat(tok.literal, 64)
		if err != nil {
			p.errorf(tok, "float literal %s out of range", tok.literal)
			return &floatLit{pos: pos}
		}
		return &floatLit{value: v, pos: pos}
	case tokenString:
		p.advance()
		return &stringLit{value: tok.literal, pos: pos}
	case tokenChar:
		p.advance()
		r := []rune(tok.literal)
		return &charLit{value: r[0], pos: pos}
	case tokenTrue:
		p.advance()
		return &boolLit{value: true, pos: pos}
	case tokenFalse:
		p.advance()
		return &boolLit{value: false, pos: pos}
	case tokenIdent:
		p.advance()
		if p.cur.kind == tokenLParen {
			return p.parseCallArgs(tok.literal, pos)
		}
		return &identExpr{name: tok.literal, pos: pos}
	case tokenLParen:
		return p.parseParenOrTuple(pos)
	case tokenLBracket:
		return p.parseVec(pos)
	}
	p.errorf(tok, "expected an expression, found %s", tok)
	p.advance()
	return &unitLit{pos: pos}
}

func (p *parser) parseCallArgs(name string, pos position) expr {
	p.expect(tokenLParen)
	var args []expr
	for p.cur.kind != tokenRParen && !p.failed {
		args = append(args, p.parseExpr())
		if p.cur.kind != tokenComma {
			break
		}
		p.advance()
	}
	p.expect(tokenRParen)
	return &callExpr{name: name, args: args, pos: pos}
}

// parseParenOrTuple disambiguates `()` (unit), `(e)` (grouping) and
// `(e, ...)` (tuple).
func (p *parser) parseParenOrTuple(pos position) expr {
	p.expect(tokenLParen)
	if p.cur.kind == tokenRParen {
		p.advance()
		return &unitLit{pos: pos}
	}
	first := p.parseExpr()
	if p.cur.kind == tokenRParen {
		p.advance()
		return first
	}
	elems := []expr{first}
	for p.cur.kind == tokenComma && !p.failed {
		p.advance()
		if p.cur.kind == tokenRParen {
			break // trailing comma
		}
		elems = append(elems, p.parseExpr())
	}
	p.expect(tokenRParen)
	return &tupleExpr{elems: elems, pos: pos}
}

func (p *parser) parseVec(pos position) expr {
	p.expect(tokenLBracket)
	var elems []expr
	for p.cur.kind != tokenRBracket && !p.failed {
		elems = append(elems, p.parseExpr())
		if p.cur.kind != tokenComma {
			break
		}
		p.advance()
	}
	p.expect(tokenRBracket)
	return &vecExpr{elems: elems, pos: pos}
}
