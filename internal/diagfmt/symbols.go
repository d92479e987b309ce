package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"minic/internal/symbols"
)

type SymbolOutput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FormatSymbolsPretty выводит таблицу символов в порядке первой встречи имени.
func FormatSymbolsPretty(w io.Writer, table *symbols.Table) error {
	entries := table.Entries()
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "(empty symbol table)")
		return err
	}

	nameWidth := len("Name")
	for _, e := range entries {
		if nw := runewidth.StringWidth(e.Name); nw > nameWidth {
			nameWidth = nw
		}
	}

	if _, err := fmt.Fprintf(w, "%s | Type\n", runewidth.FillRight("Name", nameWidth)); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s | %s\n", runewidth.FillRight(e.Name, nameWidth), e.Type); err != nil {
			return err
		}
	}
	return nil
}

// FormatSymbolsJSON выводит таблицу символов в JSON формате
func FormatSymbolsJSON(w io.Writer, table *symbols.Table) error {
	output := make([]SymbolOutput, 0, table.Len())
	for _, e := range table.Entries() {
		output = append(output, SymbolOutput{Name: e.Name, Type: e.Type.String()})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
