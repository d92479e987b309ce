// Package sema validates declaration uniqueness and use-before-declaration
// over a source file, one physical line at a time. Lines are tokenized with
// the shared lexer (sub-range cursors), so the lexical rules live in one
// place; the declared-set bookkeeping is the only logic here.
package sema

import (
	"fmt"

	"minic/internal/diag"
	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/symbols"
	"minic/internal/token"
)

// ErrorKind различает виды семантических ошибок.
type ErrorKind uint8

const (
	// DuplicateDeclaration: повторное объявление имени.
	DuplicateDeclaration ErrorKind = iota
	// UndeclaredVariable: использование необъявленного имени.
	UndeclaredVariable
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case UndeclaredVariable:
		return "UndeclaredVariable"
	}
	return "Unknown"
}

// Error — одна семантическая ошибка. Ошибки накапливаются в порядке строк,
// проверка никогда не останавливается досрочно.
type Error struct {
	Kind    ErrorKind
	Name    string
	Span    source.Span
	Message string
}

type Options struct {
	Reporter diag.Reporter // может быть nil
}

type Result struct {
	Errors []Error
}

// HasErrors reports whether any semantic error was found.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Check обходит файл построчно с накоплением declared-множества:
//   - строка-объявление: повтор имени → DuplicateDeclaration, иначе имя
//     попадает в declared;
//   - строка-присваивание: необъявленный LHS и каждый необъявленный
//     идентификатор в RHS → UndeclaredVariable (без дедупликации);
//   - прочие строки семантических ошибок не порождают (это забота
//     синтаксической фазы).
func Check(file *source.File, opts Options) *Result {
	c := checker{
		file:     file,
		declared: symbols.NewTable(),
		result:   &Result{},
		opts:     opts,
	}

	for _, sp := range file.LineSpans() {
		if sp.Empty() {
			continue
		}
		c.checkLine(sp)
	}
	return c.result
}

type checker struct {
	file     *source.File
	declared *symbols.Table
	result   *Result
	opts     Options
}

func (c *checker) checkLine(sp source.Span) {
	toks := scanLine(c.file, sp)
	if len(toks) == 0 {
		return
	}

	if toks[0].Kind == token.KwInt {
		c.checkDeclaration(toks)
		return
	}
	if eq := indexOfAssign(toks); eq >= 0 {
		c.checkAssignment(toks, eq)
	}
	// ни объявление, ни присваивание — не наша фаза
}

func (c *checker) checkDeclaration(toks []token.Token) {
	// Имя — токен, следующий за ключевым словом. Строка без имени
	// ("int;") семантически пуста: объявлять нечего.
	if len(toks) < 2 || toks[1].Kind != token.Ident {
		return
	}
	name := toks[1]
	if c.declared.Has(name.Text) {
		c.emit(DuplicateDeclaration, name)
		return
	}
	c.declared.Insert(name.Text)
}

func (c *checker) checkAssignment(toks []token.Token, eq int) {
	// LHS: идентификатор слева от первого '='.
	if eq > 0 && toks[0].Kind == token.Ident && !c.declared.Has(toks[0].Text) {
		c.emit(UndeclaredVariable, toks[0])
	}

	// RHS: каждый необъявленный идентификатор — отдельная ошибка,
	// числа не проверяются.
	for _, tok := range toks[eq+1:] {
		if tok.Kind == token.Ident && !c.declared.Has(tok.Text) {
			c.emit(UndeclaredVariable, tok)
		}
	}
}

func (c *checker) emit(kind ErrorKind, tok token.Token) {
	var msg string
	var code diag.Code
	switch kind {
	case DuplicateDeclaration:
		msg = fmt.Sprintf("multiple declaration of '%s'", tok.Text)
		code = diag.SemaDuplicateDeclaration
	case UndeclaredVariable:
		msg = fmt.Sprintf("undeclared variable '%s'", tok.Text)
		code = diag.SemaUndeclaredVariable
	}

	c.result.Errors = append(c.result.Errors, Error{
		Kind:    kind,
		Name:    tok.Text,
		Span:    tok.Span,
		Message: msg,
	})
	if c.opts.Reporter != nil {
		c.opts.Reporter.Report(code, diag.SevError, tok.Span, msg, nil)
	}
}

// scanLine токенизирует одну строку общим лексером.
// Лексические ошибки здесь не репортим — это забота лексической фазы.
func scanLine(file *source.File, sp source.Span) []token.Token {
	lx := lexer.NewRange(file, sp.Start, sp.End, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func indexOfAssign(toks []token.Token) int {
	for i, tok := range toks {
		if tok.Kind == token.Assign {
			return i
		}
	}
	return -1
}
