package source

import (
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" → LineIdx = [1,3]
	id := fs.AddVirtual("a.mc", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3} // позиции символов \n
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}

	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	original := []byte("int a;\r\na = 5;\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("Expected CRLF normalization to be detected")
	}

	expected := "int a;\na = 5;\n"
	if string(normalized) != expected {
		t.Errorf("Expected normalized content %q, got %q", expected, string(normalized))
	}
}

func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}

	if string(withoutBOM) != "x\n" {
		t.Errorf("Expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("test.mc", []byte("int a;\na = 5;\n"))

	// "a = 5;" начинается со смещения 7 (строка 2, колонка 1)
	span := Span{File: id, Start: 7, End: 8}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 2, Col: 1}) {
		t.Errorf("Expected start 2:1, got %d:%d", start.Line, start.Col)
	}
	if (end != LineCol{Line: 2, Col: 2}) {
		t.Errorf("Expected end 2:2, got %d:%d", end.Line, end.Col)
	}
}

func TestResolveLineBoundaries(t *testing.T) {
	fs := NewFileSet()

	// lineIdx = [6, 13]
	id := fs.AddVirtual("bounds.mc", []byte("int a;\na = 5;\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},   // первый байт файла
		{5, LineCol{Line: 1, Col: 6}},   // ';' первой строки
		{6, LineCol{Line: 1, Col: 7}},   // сам '\n' — ещё строка 1
		{7, LineCol{Line: 2, Col: 1}},   // байт сразу после '\n'
		{12, LineCol{Line: 2, Col: 6}},  // ';' второй строки
		{13, LineCol{Line: 2, Col: 7}},  // завершающий '\n'
		{14, LineCol{Line: 3, Col: 1}},  // EOF за последним '\n'
	}

	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Offset %d: expected %d:%d, got %d:%d",
				tt.off, tt.want.Line, tt.want.Col, start.Line, start.Col)
		}
	}
}

func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()

	// без \n вообще — LineIdx пустой
	id := fs.AddVirtual("one.mc", []byte("int a;"))
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 5})

	if (start != LineCol{Line: 1, Col: 5}) || (end != LineCol{Line: 1, Col: 6}) {
		t.Errorf("Expected 1:5-1:6, got %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
}

func TestLineSpans(t *testing.T) {
	fs := NewFileSet()

	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{"empty", "", nil},
		{"single line no newline", "int a;", []string{"int a;"}},
		{"trailing newline", "int a;\na = 5;\n", []string{"int a;", "a = 5;"}},
		{"blank middle line", "int a;\n\na = 5;", []string{"int a;", "", "a = 5;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := fs.AddVirtual(tt.name+".mc", []byte(tt.content))
			file := fs.Get(id)

			spans := file.LineSpans()
			if len(spans) != len(tt.lines) {
				t.Fatalf("Expected %d line spans, got %d", len(tt.lines), len(spans))
			}
			for i, sp := range spans {
				if got := file.Text(sp); got != tt.lines[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.lines[i], got)
				}
			}
		})
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("main.mc", []byte("int a;\n"))

	file, ok := fs.GetByPath("main.mc")
	if !ok {
		t.Fatal("Expected file to be found by path")
	}
	if string(file.Content) != "int a;\n" {
		t.Errorf("Unexpected content: %q", string(file.Content))
	}

	if _, ok := fs.GetByPath("missing.mc"); ok {
		t.Error("Expected lookup of missing path to fail")
	}
}
