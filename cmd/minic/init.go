package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new mini-C project",
	Long: `Initialize a new mini-C project by creating a project manifest (minic.toml)
and a sample entry point (main.mc). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "minic-project"
	}

	// Create manifest file if not exists
	manifestPath := filepath.Join(target, "minic.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	// Create main.mc if not exists
	mainPath := filepath.Join(target, "main.mc")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainMC()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.mc: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized mini-C project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - minic.toml\n")
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - main.mc\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - main.mc (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest for a mini-C project
// using the provided package name.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# Mini-C project manifest
[package]
name = "%s"
version = "0.1.0"

[run]
main = "main.mc"
`, name)
}

// defaultMainMC returns the sample program used when initializing a new
// project: two declarations, a literal assignment and an additive one.
func defaultMainMC() string {
	return `int a;
int b;
a = 5;
b = a + 10;
`
}
