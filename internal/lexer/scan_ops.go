package lexer

import (
	"fmt"

	"minic/internal/token"
)

// scanOperatorOrPunct сканирует односимвольные операторы и ';'.
// Символ вне набора правил — репорт UnknownChar + токен Invalid;
// сканирование продолжается со следующего символа.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	ch := lx.cursor.Peek()
	switch ch {
	case '+':
		lx.cursor.Bump()
		return emit(token.Plus)
	case '-':
		lx.cursor.Bump()
		return emit(token.Minus)
	case '*':
		lx.cursor.Bump()
		return emit(token.Star)
	case '/':
		lx.cursor.Bump()
		return emit(token.Slash)
	case '=':
		lx.cursor.Bump()
		return emit(token.Assign)
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon)
	}

	// Неизвестный символ. Съедаем целую руну, чтобы не дробить UTF-8
	// на несколько Invalid токенов.
	off := lx.cursor.Off
	r := lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnknownChar, sp, fmt.Sprintf("unrecognized character %q at offset %d", r, off))
	return emit(token.Invalid)
}
