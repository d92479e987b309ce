package lexer

import (
	"minic/internal/diag"
	"minic/internal/source"
)

// ReporterAdapter адаптирует diag.Bag для использования в лексере
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Report реализует Reporter, переводя строковый kind лексера в diag.Code.
func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	code := diag.UnknownCode
	if kind == ReportUnknownChar {
		code = diag.LexUnknownChar
	}
	r.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
