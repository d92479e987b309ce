package symbols

import (
	"minic/internal/token"
)

// Type — объявленный тип символа. В языке ровно один тип.
type Type uint8

const (
	// TypeInt is the only declared type in the language.
	TypeInt Type = iota
)

func (t Type) String() string {
	if t == TypeInt {
		return "int"
	}
	return "unknown"
}

// Entry — одна запись таблицы символов.
type Entry struct {
	Name string
	Type Type
}

// Table is an insertion-ordered symbol table: name → declared type.
// Первое вхождение выигрывает; повторные вставки не меняют таблицу.
type Table struct {
	entries []Entry
	index   map[string]int // name -> позиция в entries
}

func NewTable() *Table {
	return &Table{
		entries: make([]Entry, 0),
		index:   make(map[string]int),
	}
}

// Insert добавляет имя с типом TypeInt, если его ещё нет.
// Возвращает false, если имя уже было в таблице.
func (t *Table) Insert(name string) bool {
	if _, ok := t.index[name]; ok {
		return false
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, Entry{Name: name, Type: TypeInt})
	return true
}

// Lookup возвращает тип по имени.
func (t *Table) Lookup(name string) (Type, bool) {
	if i, ok := t.index[name]; ok {
		return t.entries[i].Type, true
	}
	return TypeInt, false
}

// Has проверяет наличие имени.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries возвращает записи в порядке первой встречи имени.
// ВАЖНО: не модифицируйте возвращаемый срез.
func (t *Table) Entries() []Entry {
	return t.entries
}

// FromTokens строит таблицу по потоку токенов: по одной записи на каждый
// уникальный идентификатор, в порядке сканирования.
func FromTokens(tokens []token.Token) *Table {
	table := NewTable()
	for _, tok := range tokens {
		if tok.Kind == token.Ident {
			table.Insert(tok.Text)
		}
	}
	return table
}
