package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"minic/internal/diag"
	"minic/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид, по одной на строку:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	if !opts.Color {
		errColor.DisableColor()
		warnColor.DisableColor()
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		sev := errColor.Sprint(d.Severity)
		if d.Severity == diag.SevWarning {
			sev = warnColor.Sprint(d.Severity)
		}

		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			file.FormatPath(opts.PathMode.String(), fs.BaseDir()),
			start.Line, start.Col,
			sev, d.Code.ID(), d.Message); err != nil {
			return err
		}

		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			if _, err := fmt.Fprintf(w, "  note %d:%d: %s\n",
				noteStart.Line, noteStart.Col, note.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}
