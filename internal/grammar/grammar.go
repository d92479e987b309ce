// Package grammar implements the shallow line-oriented syntax triage.
// It is deliberately string-level and independent of the lexer and parser:
// one quick verdict per line, never a gate for the deeper phases.
package grammar

import (
	"strings"

	"minic/internal/source"
)

// Class классифицирует одну физическую строку исходника.
type Class uint8

const (
	// ValidDeclaration: строка начинается с 'int' и заканчивается ';'.
	ValidDeclaration Class = iota
	// ValidAssignment: строка содержит '=' и заканчивается ';'.
	ValidAssignment
	// SyntaxError: всё остальное.
	SyntaxError
)

func (c Class) String() string {
	switch c {
	case ValidDeclaration:
		return "Valid Declaration"
	case ValidAssignment:
		return "Valid Assignment"
	case SyntaxError:
		return "Syntax Error"
	}
	return "Unknown"
}

// LineVerdict — вердикт по одной непустой строке.
type LineVerdict struct {
	Line  string      // строка после TrimSpace
	Span  source.Span // спан обрезанной строки в файле
	Class Class
}

// CheckLines выдаёт по одному вердикту на каждую непустую (после TrimSpace)
// физическую строку, в порядке следования. Приоритет правил фиксирован:
// declaration, затем assignment, затем SyntaxError.
func CheckLines(file *source.File) []LineVerdict {
	var verdicts []LineVerdict

	for _, sp := range file.LineSpans() {
		trimmed, ok := trimSpan(file, sp)
		if !ok {
			continue // пустая строка — вердикта нет
		}
		line := file.Text(trimmed)

		verdicts = append(verdicts, LineVerdict{
			Line:  line,
			Span:  trimmed,
			Class: classify(line),
		})
	}
	return verdicts
}

func classify(line string) Class {
	switch {
	case strings.HasPrefix(line, "int") && strings.HasSuffix(line, ";"):
		return ValidDeclaration
	case strings.Contains(line, "=") && strings.HasSuffix(line, ";"):
		return ValidAssignment
	default:
		return SyntaxError
	}
}

// trimSpan сужает спан строки, отбрасывая пробельные байты с обеих сторон.
// ok=false для пустых (после обрезки) строк.
func trimSpan(file *source.File, sp source.Span) (source.Span, bool) {
	start, end := sp.Start, sp.End
	for start < end && isSpace(file.Content[start]) {
		start++
	}
	for end > start && isSpace(file.Content[end-1]) {
		end--
	}
	if start == end {
		return source.Span{}, false
	}
	return source.Span{File: sp.File, Start: start, End: end}, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
