package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"minic/internal/diagfmt"
	"minic/internal/driver"
	"minic/internal/parser"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [path]",
	Short: "Run all four analysis phases",
	Long: `Analyze runs the lexer, the line triage, the semantic checker and the
parser over a mini-C file, or over every *.mc file when given a directory.
Without an argument it analyzes the project named by minic.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("jobs", 0, "number of files analyzed in parallel (0 = GOMAXPROCS)")
	analyzeCmd.Flags().Bool("cache", false, "record analysis summaries in the disk cache")
	analyzeCmd.Flags().Bool("drop-cache", false, "drop the disk cache before analyzing")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return fmt.Errorf("failed to get drop-cache flag: %w", err)
	}

	var cache *driver.DiskCache
	if useCache || dropCache {
		cache, err = driver.OpenDiskCache("minic")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to drop disk cache: %w", err)
			}
		}
	}

	target, err := resolveAnalyzeTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return analyzeDirectory(cmd, target, jobs, useCache, cache)
	}
	return analyzeSingle(cmd, target, useCache, cache)
}

// resolveAnalyzeTarget превращает аргумент команды в путь для анализа.
// Без аргумента — [run].main из ближайшего minic.toml, иначе ".".
func resolveAnalyzeTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if ok {
		return manifest.MainPath(), nil
	}
	return ".", nil
}

func analyzeSingle(cmd *cobra.Command, path string, useCache bool, cache *driver.DiskCache) error {
	res, err := driver.Analyze(cmd.Context(), path, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if err := renderAnalysis(cmd, res); err != nil {
		return err
	}
	if useCache {
		if err := cache.Put(driver.SummaryOf(res)); err != nil {
			return fmt.Errorf("failed to cache summary: %w", err)
		}
	}
	if res.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func analyzeDirectory(cmd *cobra.Command, dir string, jobs int, useCache bool, cache *driver.DiskCache) error {
	_, results, err := driver.AnalyzeDir(cmd.Context(), dir, maxDiagnostics(cmd), jobs)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stdout, "no *.mc files under %s\n", dir)
		return nil
	}

	failed := false
	for _, res := range results {
		if res.File != nil {
			fmt.Fprintln(os.Stdout, fileHeaderStyle(cmd).Render(res.File.Path))
		}
		if err := renderAnalysis(cmd, res); err != nil {
			return err
		}
		if useCache && res.File != nil {
			if err := cache.Put(driver.SummaryOf(res)); err != nil {
				return fmt.Errorf("failed to cache summary: %w", err)
			}
		}
		if res.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// renderAnalysis печатает все четыре секции одной единицы анализа.
func renderAnalysis(cmd *cobra.Command, res *driver.AnalyzeResult) error {
	color := useColor(cmd, os.Stdout)
	section := sectionStyle(color)
	opts := diagfmt.PrettyOpts{Color: color}

	// Результат с ошибкой загрузки: есть только bag.
	if res.Tokenize == nil {
		printDiagnostics(cmd, res.Bag, res.FileSet)
		return nil
	}

	fmt.Fprintln(os.Stdout, section.Render("Tokens"))
	if err := diagfmt.FormatTokensPretty(os.Stdout, res.Tokenize.Tokens, res.FileSet); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, section.Render("Symbol Table"))
	if err := diagfmt.FormatSymbolsPretty(os.Stdout, res.Tokenize.Symbols); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, section.Render("Line Triage"))
	if err := diagfmt.FormatVerdictsPretty(os.Stdout, res.Check.Verdicts, res.FileSet, opts); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, section.Render("Semantics"))
	if err := diagfmt.FormatSemanticsPretty(os.Stdout, res.Sema.Result, res.FileSet, opts); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, section.Render("Parse Tree"))
	if res.Parse.Err != nil {
		fmt.Fprintln(os.Stdout, parser.Describe(res.Parse.Err, res.FileSet))
	} else if err := diagfmt.FormatASTPretty(os.Stdout, res.Parse.Program); err != nil {
		return err
	}

	printDiagnostics(cmd, res.Bag, res.FileSet)
	return nil
}

func sectionStyle(color bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if color {
		style = style.Foreground(lipgloss.Color("6"))
	}
	return style
}

func fileHeaderStyle(cmd *cobra.Command) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Underline(true)
	if useColor(cmd, os.Stdout) {
		style = style.Foreground(lipgloss.Color("7"))
	}
	return style
}
