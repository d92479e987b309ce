package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"minic/internal/diag"
	"minic/internal/diagfmt"
	"minic/internal/grammar"
	"minic/internal/lexer"
	"minic/internal/parser"
	"minic/internal/sema"
	"minic/internal/source"
	"minic/internal/symbols"
	"minic/internal/token"
)

func setup(t *testing.T, input string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mc", []byte(input))
	return fs, fs.Get(id)
}

func scan(file *source.File) []token.Token {
	lx := lexer.New(file, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, file := setup(t, "int a;")
	var sb strings.Builder

	if err := diagfmt.FormatTokensJSON(&sb, scan(file)); err != nil {
		t.Fatalf("FormatTokensJSON failed: %v", err)
	}

	var out []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(out))
	}
	if out[0].Kind != "KwInt" || out[0].Text != "int" {
		t.Errorf("Unexpected first token: %+v", out[0])
	}
}

func TestFormatTokensPrettyHasPositions(t *testing.T) {
	fs, file := setup(t, "int a;\na = 5;")
	var sb strings.Builder

	if err := diagfmt.FormatTokensPretty(&sb, scan(file), fs); err != nil {
		t.Fatalf("FormatTokensPretty failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "KwInt") || !strings.Contains(out, "at 1:1-1:4") {
		t.Errorf("Missing token kind or position in output:\n%s", out)
	}
	if !strings.Contains(out, "at 2:1-2:2") {
		t.Errorf("Second line positions missing:\n%s", out)
	}
}

func TestFormatSymbolsPretty(t *testing.T) {
	_, file := setup(t, "int alpha;\nalpha = b;")
	table := symbols.FromTokens(scan(file))

	var sb strings.Builder
	if err := diagfmt.FormatSymbolsPretty(&sb, table); err != nil {
		t.Fatalf("FormatSymbolsPretty failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 { // заголовок + 2 записи
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), sb.String())
	}
	if !strings.HasPrefix(lines[1], "alpha") || !strings.Contains(lines[1], "int") {
		t.Errorf("Expected alpha entry first, got %q", lines[1])
	}
}

func TestFormatVerdictsJSON(t *testing.T) {
	fs, file := setup(t, "int a;\nb\n")
	verdicts := grammar.CheckLines(file)

	var sb strings.Builder
	if err := diagfmt.FormatVerdictsJSON(&sb, verdicts, fs); err != nil {
		t.Fatalf("FormatVerdictsJSON failed: %v", err)
	}

	var out []diagfmt.VerdictOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 verdicts, got %d", len(out))
	}
	if out[0].Verdict != "Valid Declaration" || out[1].Verdict != "Syntax Error" {
		t.Errorf("Unexpected verdicts: %+v", out)
	}
	if out[1].AtLine != 2 {
		t.Errorf("Expected second verdict at line 2, got %d", out[1].AtLine)
	}
}

func TestFormatSemanticsPrettyCleanProgram(t *testing.T) {
	fs, file := setup(t, "int a;\na = 5;\n")
	result := sema.Check(file, sema.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatSemanticsPretty(&sb, result, fs, diagfmt.PrettyOpts{}); err != nil {
		t.Fatalf("FormatSemanticsPretty failed: %v", err)
	}
	if !strings.Contains(sb.String(), "no semantic errors found") {
		t.Errorf("Expected success message, got %q", sb.String())
	}
}

func TestFormatSemanticsPrettyWithErrors(t *testing.T) {
	fs, file := setup(t, "int a;\nint a;\n")
	result := sema.Check(file, sema.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatSemanticsPretty(&sb, result, fs, diagfmt.PrettyOpts{}); err != nil {
		t.Fatalf("FormatSemanticsPretty failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "multiple declaration of 'a'") {
		t.Errorf("Expected duplicate declaration message, got %q", out)
	}
	if !strings.HasPrefix(out, "2:5:") {
		t.Errorf("Expected error position 2:5, got %q", out)
	}
}

func TestFormatASTPretty(t *testing.T) {
	_, file := setup(t, "int a;\na = 5;\n")
	prog, err := parser.ParseFile(file)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	var sb strings.Builder
	if err := diagfmt.FormatASTPretty(&sb, prog); err != nil {
		t.Fatalf("FormatASTPretty failed: %v", err)
	}

	want := `Program
├── Declaration
│   ├── int
│   ├── a
│   └── ;
└── Assignment
    ├── a
    ├── =
    ├── 5
    └── ;
`
	if sb.String() != want {
		t.Errorf("Unexpected tree rendering:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestFormatASTDot(t *testing.T) {
	_, file := setup(t, "int a;\n")
	prog, err := parser.ParseFile(file)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	var sb strings.Builder
	if err := diagfmt.FormatASTDot(&sb, prog); err != nil {
		t.Fatalf("FormatASTDot failed: %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, "digraph parsetree {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("Malformed DOT document:\n%s", out)
	}
	// Program + Decl + 3 терминала = 5 узлов, 4 ребра
	if got := strings.Count(out, " -> "); got != 4 {
		t.Errorf("Expected 4 edges, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, `[label="Declaration"]`) {
		t.Errorf("Expected Declaration node label:\n%s", out)
	}
}

func TestPrettyDiagnostics(t *testing.T) {
	fs, file := setup(t, "int a @;\n")
	bag := diag.NewBag(10)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	for {
		if tok := lx.Next(); tok.Kind == token.EOF {
			break
		}
	}
	bag.Sort()

	var sb strings.Builder
	if err := diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{}); err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "test.mc:1:7: ERROR MIN1001:") {
		t.Errorf("Unexpected diagnostic line: %q", out)
	}
	if !strings.Contains(out, "unrecognized character") {
		t.Errorf("Expected unknown character message: %q", out)
	}
}
