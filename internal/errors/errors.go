// Package errors formats source-position diagnostics with a caret-annotated
// excerpt, ported from go-dws's CompilerError
// (_examples/CWBudde-go-dws/internal/errors/errors.go) and retargeted at
// internal/token.Position. elf-lang's runtime error taxonomy itself
// (spec.md §7) is just plain Go errors carrying the fixed message strings —
// this formatter is used only for the CLI's --verbose parse diagnostics,
// since spec.md §6 requires the `run` mode's own failure output to be the
// bare `[Error] <message>` line.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/elf-lang/internal/token"
)

// SourceError pairs a message with the source position it concerns and,
// optionally, the source text needed to render a caret excerpt.
type SourceError struct {
	Message string
	Pos     token.Position
	Source  string
}

func (e *SourceError) Error() string { return e.Message }

// Format renders "line:col: message", matching CompilerError.Format's
// plain one-line form.
func (e *SourceError) Format() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// FormatWithContext renders the message plus the offending source line with
// a caret under the exact column, matching CompilerError.FormatWithContext.
func (e *SourceError) FormatWithContext() string {
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return e.Format()
	}
	srcLine := lines[e.Pos.Line-1]

	lineNumStr := fmt.Sprintf("%d", e.Pos.Line)
	gutter := strings.Repeat(" ", len(lineNumStr))

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Format())
	fmt.Fprintf(&b, "%s |\n", gutter)
	fmt.Fprintf(&b, "%s | %s\n", lineNumStr, srcLine)
	fmt.Fprintf(&b, "%s | %s\n", gutter, caret)
	return b.String()
}
