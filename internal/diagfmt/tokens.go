package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"minic/internal/source"
	"minic/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	// ширина колонки лексем (лексемы могут содержать широкие руны из Invalid токенов)
	textWidth := 0
	for _, tok := range tokens {
		if tw := runewidth.StringWidth(tok.Text); tw > textWidth {
			textWidth = tw
		}
	}

	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		startPos, endPos := fs.Resolve(tok.Span)

		lexeme := runewidth.FillRight(tok.Text, textWidth)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %s at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), lexeme,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
