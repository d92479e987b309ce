package lexer

import (
	"minic/internal/source"
	"minic/internal/token"
)

// Lexer is the single tokenization routine for minic source text.
// Он же используется семантической фазой (через NewRange) и парсером,
// чтобы лексические правила жили в одном месте.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// NewRange создаёт лексер, ограниченный полуинтервалом [start, end) файла.
// EOF такого лексера — конец диапазона, не конец файла.
func NewRange(file *source.File, start, end uint32, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewRangeCursor(file, start, end),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий **значимый** токен.
// Пробелы и переводы строк токенов не порождают. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропустить whitespace
	lx.skipWhitespace()

	// 3) Если EOF → вернуть EOF
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch):
		// буква или '_' → scanIdentOrKeyword()
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		// цифра → scanNumber()
		return lx.scanNumber()

	default:
		// иначе → scanOperatorOrPunct() (включая репорт про неизвестный символ)
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan возвращает пустой спан на текущей позиции курсора.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipWhitespace пропускает ' ', '\t', '\n' (и одиночные '\r' после нормализации не встречаются).
func (lx *Lexer) skipWhitespace() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\n' {
			return
		}
		lx.cursor.Bump()
	}
}
