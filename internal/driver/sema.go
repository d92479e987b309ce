package driver

import (
	"minic/internal/diag"
	"minic/internal/sema"
	"minic/internal/source"
)

type SemaResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  *sema.Result
	Bag     *diag.Bag
}

// Sema загружает файл и выполняет проверку объявлений и использований.
func Sema(path string, maxDiagnostics int) (*SemaResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	res := semaFile(file, bag)
	res.FileSet = fs
	return res, nil
}

func semaFile(file *source.File, bag *diag.Bag) *SemaResult {
	result := sema.Check(file, sema.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &SemaResult{
		File:   file,
		Result: result,
		Bag:    bag,
	}
}
