package token

import (
	"minic/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	return t.Kind == IntLit
}

// IsOperator reports whether the token is an arithmetic or assignment operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Assign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind == KwInt
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
