package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"minic/internal/sema"
	"minic/internal/source"
)

type SemanticErrorOutput struct {
	Kind    string      `json:"kind"`
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

// FormatSemanticsPretty выводит список семантических ошибок (или сообщение
// об их отсутствии) в порядке накопления.
func FormatSemanticsPretty(w io.Writer, result *sema.Result, fs *source.FileSet, opts PrettyOpts) error {
	okColor := color.New(color.FgGreen)
	errColor := color.New(color.FgRed, color.Bold)
	if !opts.Color {
		okColor.DisableColor()
		errColor.DisableColor()
	}

	if !result.HasErrors() {
		_, err := fmt.Fprintln(w, okColor.Sprint("no semantic errors found"))
		return err
	}

	for _, e := range result.Errors {
		start, _ := fs.Resolve(e.Span)
		if _, err := fmt.Fprintf(w, "%d:%d: %s %s\n",
			start.Line, start.Col, errColor.Sprint("semantic error:"), e.Message); err != nil {
			return err
		}
	}
	return nil
}

// FormatSemanticsJSON выводит семантические ошибки в JSON формате
func FormatSemanticsJSON(w io.Writer, result *sema.Result) error {
	output := make([]SemanticErrorOutput, 0, len(result.Errors))
	for _, e := range result.Errors {
		output = append(output, SemanticErrorOutput{
			Kind:    e.Kind.String(),
			Name:    e.Name,
			Message: e.Message,
			Span:    e.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
