package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"minic/internal/grammar"
)

// Current schema version - increment when AnalysisSummary format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит сводки анализа по хэшу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// AnalysisSummary is the cached per-file result of a full analysis run.
// Spans and trees are not cached: the summary is only good for skipping
// unchanged files, a hit still needs a re-run for detailed output.
type AnalysisSummary struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash [32]byte

	TokenCount  int
	SymbolCount int

	Declarations int
	Assignments  int
	BadLines     int

	SemaErrorCount int
	ParseOK        bool

	DiagnosticCount int
	HasErrors       bool
}

// SummaryOf flattens an AnalyzeResult into its cacheable summary.
func SummaryOf(res *AnalyzeResult) *AnalysisSummary {
	if res == nil || res.File == nil {
		return nil
	}
	s := &AnalysisSummary{
		Schema:          diskCacheSchemaVersion,
		Path:            res.File.Path,
		ContentHash:     res.File.Hash,
		DiagnosticCount: res.Bag.Len(),
		HasErrors:       res.Bag.HasErrors(),
	}
	if res.Tokenize != nil {
		s.TokenCount = len(res.Tokenize.Tokens)
		s.SymbolCount = res.Tokenize.Symbols.Len()
	}
	if res.Check != nil {
		for _, v := range res.Check.Verdicts {
			switch v.Class {
			case grammar.ValidDeclaration:
				s.Declarations++
			case grammar.ValidAssignment:
				s.Assignments++
			case grammar.SyntaxError:
				s.BadLines++
			}
		}
	}
	if res.Sema != nil {
		s.SemaErrorCount = len(res.Sema.Result.Errors)
	}
	if res.Parse != nil {
		s.ParseOK = res.Parse.Err == nil
	}
	return s
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "files".
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a summary to the disk cache.
func (c *DiskCache) Put(summary *AnalysisSummary) error {
	if c == nil || summary == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(summary.ContentHash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(summary); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a summary from the disk cache.
// Миссы (нет файла, устаревшая схема) — это (false, nil), не ошибка.
func (c *DiskCache) Get(key [32]byte, out *AnalysisSummary) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
