// Package diagfmt renders the pipeline's outputs: tokens, symbol table,
// line verdicts, semantic errors, diagnostics, and the parse tree. The
// analysis packages never import it; it only consumes their results.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
}
