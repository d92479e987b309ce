package lexer

import (
	"testing"

	"minic/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mc", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("Unexpected EOF before %c", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Expected peek %c, got %c", want, got)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Expected bump %c, got %c", want, got)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("Expected peek 0 at EOF, got %c", cursor.Peek())
	}
	if cursor.Bump() != 0 {
		t.Error("Expected bump 0 at EOF")
	}
}

func TestPeek2(t *testing.T) {
	file := createFile("ab")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Expected Peek2('a','b'), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail with one byte left")
	}
}

func TestMarkAndSpanFrom(t *testing.T) {
	file := createFile("int a;")
	cursor := NewCursor(file)

	cursor.Bump() // i
	m := cursor.Mark()
	cursor.Bump() // n
	cursor.Bump() // t

	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("Expected span 1-3, got %d-%d", sp.Start, sp.End)
	}
}

func TestEat(t *testing.T) {
	file := createFile(";x")
	cursor := NewCursor(file)

	if !cursor.Eat(';') {
		t.Error("Expected Eat(';') to succeed")
	}
	if cursor.Eat(';') {
		t.Error("Expected second Eat(';') to fail on 'x'")
	}
	if cursor.Off != 1 {
		t.Errorf("Expected offset 1, got %d", cursor.Off)
	}
}

func TestRangeCursorEOF(t *testing.T) {
	file := createFile("abcdef")
	cursor := NewRangeCursor(file, 2, 4)

	if got := cursor.Bump(); got != 'c' {
		t.Errorf("Expected 'c', got %c", got)
	}
	if got := cursor.Bump(); got != 'd' {
		t.Errorf("Expected 'd', got %c", got)
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at range limit")
	}
}
