package driver

import (
	"minic/internal/diag"
	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/symbols"
	"minic/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Symbols *symbols.Table
	Bag     *diag.Bag
}

// Tokenize загружает файл и прогоняет его через лексер целиком.
// Таблица символов строится тут же: она — побочный продукт первой фазы.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	res := tokenizeFile(file, bag)
	res.FileSet = fs
	return res, nil
}

// tokenizeFile — общее ядро для Tokenize и Analyze: лексер уже по
// загруженному файлу, диагностики в переданный bag.
func tokenizeFile(file *source.File, bag *diag.Bag) *TokenizeResult {
	opts := lexer.Options{
		Reporter: &lexer.ReporterAdapter{Bag: bag},
	}
	lx := lexer.New(file, opts)

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return &TokenizeResult{
		File:    file,
		Tokens:  tokens,
		Symbols: symbols.FromTokens(tokens),
		Bag:     bag,
	}
}
