package lexer

import (
	"minic/internal/token"
)

// scanNumber сканирует десятичный целый литерал [0-9]+.
// Язык знает только неотрицательные десятичные числа; знак — дело парсера (его нет в грамматике).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
