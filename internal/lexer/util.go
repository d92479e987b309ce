package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// ===== Работа с рунами поверх Cursor =====

// bumpRune читает текущую руну, перемещает курсор на её размер и возвращает её.
// Руна может быть обрезана лимитом диапазона — тогда съедаем байт за байтом.
func (lx *Lexer) bumpRune() rune {
	if lx.cursor.EOF() {
		return utf8.RuneError
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		lx.cursor.Bump()
		return rune(b)
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	if lx.cursor.Off+usz > lx.cursor.Limit && lx.cursor.Limit != 0 {
		lx.cursor.Bump()
		return utf8.RuneError
	}
	lx.cursor.Off += usz
	return r
}
