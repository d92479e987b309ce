package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"minic/internal/grammar"
	"minic/internal/source"
)

type VerdictOutput struct {
	Line    string `json:"line"`
	Verdict string `json:"verdict"`
	AtLine  uint32 `json:"at_line"`
}

// FormatVerdictsPretty выводит построчные вердикты синтаксического триажа.
func FormatVerdictsPretty(w io.Writer, verdicts []grammar.LineVerdict, fs *source.FileSet, opts PrettyOpts) error {
	if len(verdicts) == 0 {
		_, err := fmt.Fprintln(w, "(no lines)")
		return err
	}

	lineWidth := 0
	for _, v := range verdicts {
		if lw := runewidth.StringWidth(v.Line); lw > lineWidth {
			lineWidth = lw
		}
	}

	okColor := color.New(color.FgGreen)
	badColor := color.New(color.FgRed)
	if !opts.Color {
		okColor.DisableColor()
		badColor.DisableColor()
	}

	for _, v := range verdicts {
		start, _ := fs.Resolve(v.Span)
		verdict := okColor.Sprint(v.Class)
		if v.Class == grammar.SyntaxError {
			verdict = badColor.Sprint(v.Class)
		}
		if _, err := fmt.Fprintf(w, "%3d: %s  %s\n",
			start.Line, runewidth.FillRight(v.Line, lineWidth), verdict); err != nil {
			return err
		}
	}
	return nil
}

// FormatVerdictsJSON выводит вердикты в JSON формате
func FormatVerdictsJSON(w io.Writer, verdicts []grammar.LineVerdict, fs *source.FileSet) error {
	output := make([]VerdictOutput, 0, len(verdicts))
	for _, v := range verdicts {
		start, _ := fs.Resolve(v.Span)
		output = append(output, VerdictOutput{
			Line:    v.Line,
			Verdict: v.Class.String(),
			AtLine:  start.Line,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
