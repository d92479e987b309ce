package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diagfmt"
	"minic/internal/driver"
)

var semaCmd = &cobra.Command{
	Use:   "sema [flags] file.mc",
	Short: "Run the semantic checker",
	Long: `Sema walks the declarations and assignments of a mini-C file and reports
duplicate declarations and uses of undeclared variables`,
	Args: cobra.ExactArgs(1),
	RunE: runSema,
}

func init() {
	semaCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runSema(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Sema(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("semantic check failed: %w", err)
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		return diagfmt.FormatSemanticsPretty(os.Stdout, result.Result, result.FileSet, opts)
	case "json":
		return diagfmt.FormatSemanticsJSON(os.Stdout, result.Result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
