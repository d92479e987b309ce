package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diagfmt"
	"minic/internal/driver"
	"minic/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mc",
	Short: "Parse a mini-C source file",
	Long: `Parse builds the parse tree of a mini-C file. The tree can be rendered
as ASCII branches, JSON or Graphviz DOT`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|dot)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Err != nil {
		fmt.Fprintln(os.Stderr, parser.Describe(result.Err, result.FileSet))
		os.Exit(1)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Program)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Program)
	case "dot":
		return diagfmt.FormatASTDot(os.Stdout, result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
