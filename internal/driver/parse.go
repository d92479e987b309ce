package driver

import (
	"errors"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/parser"
	"minic/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	// Err — первая синтаксическая ошибка; Program == nil, когда Err != nil.
	Err *parser.ParseError
	Bag *diag.Bag
}

// Parse загружает файл и строит дерево разбора. Синтаксическая ошибка —
// не ошибка драйвера: она возвращается внутри результата и зеркалируется
// в bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	res := parseFile(file, bag)
	res.FileSet = fs
	return res, nil
}

func parseFile(file *source.File, bag *diag.Bag) *ParseResult {
	prog, err := parser.ParseFile(file)
	res := &ParseResult{
		File:    file,
		Program: prog,
		Bag:     bag,
	}
	if err != nil {
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			// ParseFile возвращает только *ParseError; страховка на будущее
			perr = &parser.ParseError{Expected: "valid syntax", Found: err.Error()}
		}
		res.Err = perr
		res.Program = nil
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  perr.Error(),
			Primary:  perr.Span,
		})
	}
	return res
}
