// Package parser builds the minic parse tree by recursive descent.
//
// Grammar (LL(1), fixed):
//
//	Program     := (Declaration | Assignment)*
//	Declaration := 'int' Identifier ';'
//	Assignment  := Identifier '=' Term ('+' Term)? ';'
//	Term        := Identifier | Number
//
// Курсор по токенам — состояние парсера, не глобал: повторные и
// параллельные вызовы ParseFile не пересекаются.
package parser

import (
	"fmt"

	"fortio.org/safecast"

	"minic/internal/ast"
	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/token"
)

// Parser — состояние разбора одного файла.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
}

// ParseFile — входная точка для разбора одного файла.
// Возвращённая ошибка всегда *ParseError. Пустой вход — валидная
// программа без statement'ов, не ошибка.
func ParseFile(file *source.File) (*ast.Program, error) {
	p := &Parser{
		lx:   lexer.New(file, lexer.Options{}),
		file: file,
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	lenContent, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		return nil, &ParseError{Expected: "a smaller file", Found: "<overflow>"}
	}

	prog := &ast.Program{
		FileSpan: source.Span{File: p.file.ID, Start: 0, End: lenContent},
	}

	// Ключевое слово 'int' отличает Declaration от Assignment по одному
	// токену просмотра; отката нет.
	for !p.at(token.EOF) {
		var stmt ast.Node
		var err error
		if p.at(token.KwInt) {
			stmt, err = p.parseDeclaration()
		} else {
			stmt, err = p.parseAssignment()
		}
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// parseDeclaration — 'int' Identifier ';'
func (p *Parser) parseDeclaration() (*ast.Decl, error) {
	kw, err := p.expect(token.KwInt, "'int'")
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident, "identifier")
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.Decl{Keyword: kw, Name: name, Semi: semi}, nil
}

// parseAssignment — Identifier '=' Term ('+' Term)? ';'
func (p *Parser) parseAssignment() (*ast.Assign, error) {
	target, err := p.expect(token.Ident, "identifier")
	if err != nil {
		return nil, err
	}
	eq, err := p.expect(token.Assign, "'='")
	if err != nil {
		return nil, err
	}
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	assign := &ast.Assign{Target: target, Eq: eq, First: first}

	// Опциональный аддитивный хвост: один токен просмотра.
	if p.at(token.Plus) {
		assign.Plus = p.terminal(p.lx.Next())
		second, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		assign.Second = second
	}

	semi, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	assign.Semi = semi
	return assign, nil
}

// parseTerm — Identifier | Number
func (p *Parser) parseTerm() (*ast.Terminal, error) {
	if p.at(token.Ident) || p.at(token.IntLit) {
		return p.terminal(p.lx.Next()), nil
	}
	return nil, p.fail("identifier or number")
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// expect потребляет текущий токен, если он нужного вида,
// иначе возвращает ParseError с парой expected/found.
func (p *Parser) expect(k token.Kind, expected string) (*ast.Terminal, error) {
	if p.at(k) {
		return p.terminal(p.lx.Next()), nil
	}
	return nil, p.fail(expected)
}

func (p *Parser) fail(expected string) *ParseError {
	tok := p.lx.Peek()
	found := tok.Text
	if tok.Kind == token.EOF {
		found = "<eof>"
	}
	return &ParseError{
		Expected: expected,
		Found:    found,
		Span:     tok.Span,
	}
}

func (p *Parser) terminal(tok token.Token) *ast.Terminal {
	return &ast.Terminal{Text: tok.Text, TextSpan: tok.Span}
}

// Describe формирует человекочитаемое описание ошибки с позицией.
func Describe(err *ParseError, fs *source.FileSet) string {
	start, _ := fs.Resolve(err.Span)
	return fmt.Sprintf("%d:%d: %s", start.Line, start.Col, err.Error())
}
