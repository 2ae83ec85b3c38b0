package compiler

import "fmt"

// tokenKind enumerates the lexical categories of the script language.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenInt
	tokenFloat
	tokenString
	tokenChar
	tokenPub
	tokenFn
	tokenLet
	tokenTrue
	tokenFalse
	tokenLParen
	tokenRParen
	tokenLBrace
	tokenRBrace
	tokenLBracket
	tokenRBracket
	tokenComma
	tokenSemicolon
	tokenAssign
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenIllegal
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of file"
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer literal"
	case tokenFloat:
		return "float literal"
	case tokenString:
		return "string literal"
	case tokenChar:
		return "char literal"
	case tokenPub:
		return "pub"
	case tokenFn:
		return "fn"
	case tokenLet:
		return "let"
	case tokenTrue:
		return "true"
	case tokenFalse:
		return "false"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenLBrace:
		return "{"
	case tokenRBrace:
		return "}"
	case tokenLBracket:
		return "["
	case tokenRBracket:
		return "]"
	case tokenComma:
		return ","
	case tokenSemicolon:
		return ";"
	case tokenAssign:
		return "="
	case tokenPlus:
		return "+"
	case tokenMinus:
		return "-"
	case tokenStar:
		return "*"
	case tokenSlash:
		return "/"
	case tokenPercent:
		return "%"
	default:
		return "illegal token"
	}
}

// token is one lexed unit with its position in the source.
type token struct {
	kind    tokenKind
	literal string
	line    int
	column  int
}

func (t token) String() string {
	if t.literal != "" {
		return fmt.Sprintf("%s %q", t.kind, t.literal)
	}
	return t.kind.String()
}

var keywords = map[string]tokenKind{
	"pub":   tokenPub,
	"fn":    tokenFn,
	"let":   tokenLet,
	"true":  tokenTrue,
	"false": tokenFalse,
}
