package driver

import (
	"fmt"

	"minic/internal/diag"
	"minic/internal/grammar"
	"minic/internal/source"
)

type CheckResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Verdicts []grammar.LineVerdict
	Bag      *diag.Bag
}

// Check загружает файл и классифицирует каждую непустую строку.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	res := checkFile(file, bag)
	res.FileSet = fs
	return res, nil
}

func checkFile(file *source.File, bag *diag.Bag) *CheckResult {
	verdicts := grammar.CheckLines(file)

	// Каждый Syntax Error дублируется диагностикой, чтобы analyze
	// собирал все фазы в одном bag.
	for _, v := range verdicts {
		if v.Class != grammar.SyntaxError {
			continue
		}
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynBadLine,
			Message:  fmt.Sprintf("line %q is neither a declaration nor an assignment", v.Line),
			Primary:  v.Span,
		})
	}

	return &CheckResult{
		File:     file,
		Verdicts: verdicts,
		Bag:      bag,
	}
}
