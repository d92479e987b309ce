package main

import (
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diag"
	"minic/internal/diagfmt"
	"minic/internal/source"
)

// printDiagnostics выводит накопленные диагностики в stderr.
// Ошибка форматирования stderr не прерывает команду.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	opts := diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
	}
	_ = diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
