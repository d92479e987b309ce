package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar Code = 1001

	// Синтаксические
	SynUnexpectedToken Code = 2001
	SynBadLine         Code = 2002

	// Семантические
	SemaDuplicateDeclaration Code = 3001
	SemaUndeclaredVariable   Code = 3002

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexUnknownChar:           "Unknown character",
	SynUnexpectedToken:       "Unexpected token",
	SynBadLine:               "Line is neither a declaration nor an assignment",
	SemaDuplicateDeclaration: "Multiple declaration of variable",
	SemaUndeclaredVariable:   "Use of undeclared variable",
	IOLoadFileError:          "Failed to load file",
}

// ID возвращает стабильный строковый идентификатор кода, например "MIN1001".
func (c Code) ID() string {
	return fmt.Sprintf("MIN%04d", uint16(c))
}

func (c Code) String() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
