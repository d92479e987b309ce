package source

// FileID uniquely identifies a source file within a FileSet.
// Это индекс в срезе файлов, поэтому спаны остаются компактными.
type FileID uint32

// FileFlags encodes how a file entered the FileSet and what the loader
// normalized away.
type FileFlags uint8

const (
	// FileVirtual: добавлен не с диска (тест, stdin, generated).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM: у исходника был UTF-8 BOM, срезан при загрузке.
	FileHadBOM
	// FileNormalizedCRLF: CRLF заменены на LF, индексация строк — по LF.
	FileNormalizedCRLF
)

// File is one loaded .mc source: normalized content plus the derived
// line index and sha256 content hash (the disk-cache key).
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // смещения всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}
