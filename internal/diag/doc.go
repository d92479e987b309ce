// Package diag carries structured diagnostics between analysis phases and
// the presentation layer. Phases report through Reporter; accumulation
// happens in a bounded Bag; rendering lives in diagfmt.
package diag
