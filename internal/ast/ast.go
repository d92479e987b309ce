// Package ast defines the parse tree for minic programs.
//
// The node set is closed: Program, Decl, Assign, Terminal. Every node is
// created once by the parser and owned by exactly one parent, so a walk
// visits each node exactly once and a renderer may use node identity as a
// unique tree-position key. Children are ordered exactly as the tokens
// were consumed.
package ast

import (
	"minic/internal/source"
)

// Node — закрытое множество вариантов дерева разбора.
type Node interface {
	Span() source.Span
	// Children returns the node's children in consumption order.
	// Терминалы возвращают nil.
	Children() []Node
	// Label is the renderer-facing node name.
	Label() string

	isNode()
}

// Program — корень дерева; statements в порядке исходника.
type Program struct {
	FileSpan source.Span
	Stmts    []Node // только *Decl и *Assign
}

func (p *Program) Span() source.Span { return p.FileSpan }
func (p *Program) Children() []Node  { return p.Stmts }
func (p *Program) Label() string     { return "Program" }
func (p *Program) isNode()           {}

// Decl — 'int' Identifier ';'
type Decl struct {
	Keyword *Terminal
	Name    *Terminal
	Semi    *Terminal
}

func (d *Decl) Span() source.Span {
	return d.Keyword.Span().Cover(d.Semi.Span())
}
func (d *Decl) Children() []Node {
	return []Node{d.Keyword, d.Name, d.Semi}
}
func (d *Decl) Label() string { return "Declaration" }
func (d *Decl) isNode()       {}

// Assign — Identifier '=' Term ('+' Term)? ';'
// Plus и Second либо оба nil, либо оба заданы.
type Assign struct {
	Target *Terminal
	Eq     *Terminal
	First  *Terminal
	Plus   *Terminal // nil, если аддитивного хвоста нет
	Second *Terminal // nil, если аддитивного хвоста нет
	Semi   *Terminal
}

func (a *Assign) Span() source.Span {
	return a.Target.Span().Cover(a.Semi.Span())
}
func (a *Assign) Children() []Node {
	children := []Node{a.Target, a.Eq, a.First}
	if a.Plus != nil {
		children = append(children, a.Plus, a.Second)
	}
	return append(children, a.Semi)
}
func (a *Assign) Label() string { return "Assignment" }
func (a *Assign) isNode()       {}

// Terminal — лист с лексемой токена.
type Terminal struct {
	Text     string
	TextSpan source.Span
}

func (t *Terminal) Span() source.Span { return t.TextSpan }
func (t *Terminal) Children() []Node  { return nil }
func (t *Terminal) Label() string     { return t.Text }
func (t *Terminal) isNode()           {}
