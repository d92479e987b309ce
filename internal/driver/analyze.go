package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"minic/internal/diag"
	"minic/internal/source"
)

// AnalyzeResult собирает выход всех четырёх фаз по одному файлу.
// Bag — объединённые и отсортированные диагностики всех фаз.
type AnalyzeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokenize *TokenizeResult
	Check    *CheckResult
	Sema     *SemaResult
	Parse    *ParseResult
	Bag      *diag.Bag
}

// Analyze прогоняет файл через лексер, проверку строк, семантику и парсер.
// Фазы независимы (файл иммутабелен после загрузки), поэтому выполняются
// параллельно, каждая со своим bag; объединение — после Wait.
func Analyze(ctx context.Context, path string, maxDiagnostics int) (*AnalyzeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)

	res, err := analyzeFile(ctx, file, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res.setFileSet(fileSet)
	return res, nil
}

func (r *AnalyzeResult) setFileSet(fs *source.FileSet) {
	r.FileSet = fs
	if r.Tokenize != nil {
		r.Tokenize.FileSet = fs
	}
	if r.Check != nil {
		r.Check.FileSet = fs
	}
	if r.Sema != nil {
		r.Sema.FileSet = fs
	}
	if r.Parse != nil {
		r.Parse.FileSet = fs
	}
}

func analyzeFile(ctx context.Context, file *source.File, maxDiagnostics int) (*AnalyzeResult, error) {
	res := &AnalyzeResult{File: file}
	bags := [4]*diag.Bag{}
	for i := range bags {
		bags[i] = diag.NewBag(maxDiagnostics)
	}

	g, gctx := errgroup.WithContext(ctx)
	run := func(phase func()) {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			phase()
			return nil
		})
	}

	run(func() { res.Tokenize = tokenizeFile(file, bags[0]) })
	run(func() { res.Check = checkFile(file, bags[1]) })
	run(func() { res.Sema = semaFile(file, bags[2]) })
	run(func() { res.Parse = parseFile(file, bags[3]) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := diag.NewBag(maxDiagnostics)
	for _, bag := range bags {
		merged.Merge(bag)
	}
	merged.Sort()
	res.Bag = merged
	return res, nil
}

// listSourceFiles возвращает отсортированный список всех *.mc файлов.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir анализирует все *.mc файлы в директории, по jobs файлов
// одновременно. Порядок результатов — порядок отсортированных путей,
// независимо от планировщика.
func AnalyzeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []*AnalyzeResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагрузка в один поток: FileSet не потокобезопасен на запись.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]*AnalyzeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = &AnalyzeResult{FileSet: fileSet, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			res, err := analyzeFile(gctx, file, maxDiagnostics)
			if err != nil {
				return err
			}
			res.setFileSet(fileSet)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
