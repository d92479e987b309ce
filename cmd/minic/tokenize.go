package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diagfmt"
	"minic/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mc",
	Short: "Tokenize a mini-C source file",
	Long:  `Tokenize breaks down a mini-C source file into its constituent tokens and prints the symbol table`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("symbols", false, "print the symbol table instead of the token stream")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	symbolsOnly, err := cmd.Flags().GetBool("symbols")
	if err != nil {
		return fmt.Errorf("failed to get symbols flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены в stdout
	printDiagnostics(cmd, result.Bag, result.FileSet)

	if symbolsOnly {
		switch format {
		case "pretty":
			return diagfmt.FormatSymbolsPretty(os.Stdout, result.Symbols)
		case "json":
			return diagfmt.FormatSymbolsJSON(os.Stdout, result.Symbols)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
