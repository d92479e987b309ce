package lexer_test

import (
	"testing"

	"minic/internal/diag"
	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	opts := lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}}
	return lexer.New(file, opts), bag
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokens)
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestDeclaration(t *testing.T) {
	expectTokens(t, "int a;", []token.Kind{token.KwInt, token.Ident, token.Semicolon})
}

func TestAssignment(t *testing.T) {
	expectTokens(t, "b = a + 10;", []token.Kind{
		token.Ident, token.Assign, token.Ident, token.Plus, token.IntLit, token.Semicolon,
	})
}

func TestAllOperators(t *testing.T) {
	expectTokens(t, "+ - * / =", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Assign,
	})
}

func TestKeywordVersusIdent(t *testing.T) {
	// 'int' — ключевое слово, 'intx'/'Int' — идентификаторы (максимальный munch + регистр)
	expectTokens(t, "int intx Int _int", []token.Kind{
		token.KwInt, token.Ident, token.Ident, token.Ident,
	})
}

func TestWhitespaceProducesNoTokens(t *testing.T) {
	lx, _ := makeTestLexer(" \t\n\n  ")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("Expected EOF for whitespace-only input, got %v", tok.Kind)
	}
}

func TestEmptyInput(t *testing.T) {
	lx, bag := makeTestLexer("")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("Expected EOF for empty input, got %v", tok.Kind)
	}
	// после EOF — снова EOF
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("Expected repeated EOF, got %v", tok.Kind)
	}
	if bag.Len() != 0 {
		t.Errorf("Expected no diagnostics, got %d", bag.Len())
	}
}

func TestTokenSpansAndText(t *testing.T) {
	lx, _ := makeTestLexer("a = 5;")
	expected := []struct {
		text  string
		start uint32
		end   uint32
	}{
		{"a", 0, 1},
		{"=", 2, 3},
		{"5", 4, 5},
		{";", 5, 6},
	}
	for i, want := range expected {
		tok := lx.Next()
		if tok.Text != want.text {
			t.Errorf("Token %d: expected text %q, got %q", i, want.text, tok.Text)
		}
		if tok.Span.Start != want.start || tok.Span.End != want.end {
			t.Errorf("Token %d: expected span %d-%d, got %d-%d",
				i, want.start, want.end, tok.Span.Start, tok.Span.End)
		}
	}
}

func TestUnknownCharReported(t *testing.T) {
	lx, bag := makeTestLexer("a @ b")
	tokens := collectAllTokens(lx)

	// @ становится Invalid токеном, соседи сохраняются
	kinds := []token.Kind{token.Ident, token.Invalid, token.Ident}
	if len(tokens) != len(kinds) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(kinds), len(tokens), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("Token %d: expected %v, got %v", i, k, tokens[i].Kind)
		}
	}

	if !bag.HasErrors() {
		t.Fatal("Expected a LexUnknownChar error")
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnknownChar {
		t.Errorf("Expected LexUnknownChar, got %v", d.Code)
	}
	if d.Primary.Start != 2 {
		t.Errorf("Expected error at offset 2, got %d", d.Primary.Start)
	}
}

func TestUnknownUnicodeCharSingleToken(t *testing.T) {
	// Многобайтовая руна должна дать один Invalid токен, не несколько
	lx, bag := makeTestLexer("α")
	tokens := collectAllTokens(lx)
	if len(tokens) != 1 || tokens[0].Kind != token.Invalid {
		t.Fatalf("Expected a single Invalid token, got %v", tokens)
	}
	if bag.Len() != 1 {
		t.Errorf("Expected exactly one diagnostic, got %d", bag.Len())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("int a;")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Errorf("Peek is not stable: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n != p1 {
		t.Errorf("Next should return the peeked token: %v vs %v", n, p1)
	}
}

func TestRangeLexerStopsAtLimit(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mc", []byte("int a;\na = 5;\n"))
	file := fs.Get(fileID)

	// Только первая строка: [0, 6)
	lx := lexer.NewRange(file, 0, 6, lexer.Options{})
	tokens := collectAllTokens(lx)

	kinds := []token.Kind{token.KwInt, token.Ident, token.Semicolon}
	if len(tokens) != len(kinds) {
		t.Fatalf("Expected %d tokens in range, got %d: %v", len(kinds), len(tokens), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("Token %d: expected %v, got %v", i, k, tokens[i].Kind)
		}
	}
}

func TestIdempotentScan(t *testing.T) {
	const input = "int a;\na = a + 1;\n"
	first := func() []token.Token {
		lx, _ := makeTestLexer(input)
		return collectAllTokens(lx)
	}
	a, b := first(), first()
	if len(a) != len(b) {
		t.Fatalf("Scan lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Token %d differs between scans: %v vs %v", i, a[i], b[i])
		}
	}
}
