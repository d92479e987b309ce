package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diagfmt"
	"minic/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.mc",
	Short: "Classify each source line",
	Long: `Check runs the line-oriented grammar triage: every non-blank line is
classified as Valid Declaration, Valid Assignment or Syntax Error`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Check(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		return diagfmt.FormatVerdictsPretty(os.Stdout, result.Verdicts, result.FileSet, opts)
	case "json":
		return diagfmt.FormatVerdictsJSON(os.Stdout, result.Verdicts, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
