package parser

import (
	"fmt"

	"minic/internal/source"
)

// ParseError — структурная ошибка рекурсивного спуска: единственный канал
// отказа парсера. Первое несовпадение прерывает весь разбор, частичное
// дерево не возвращается.
type ParseError struct {
	Expected string      // что ожидалось, например "';'" или "identifier or number"
	Found    string      // лексема фактического токена, "<eof>" на конце входа
	Span     source.Span // позиция фактического токена
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found)
}
