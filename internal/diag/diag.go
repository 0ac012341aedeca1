// Package diag implements positioned diagnostics and the multi-error list
// type the checker returns on failure, mirroring the shape of the
// teacher's semantic.AnalysisError (a slice of strings that knows how to
// render itself as one error).
package diag

import (
	"fmt"
	"strings"

	"github.com/fieldlang/fieldc/pkg/token"
)

// Diagnostic is one semantic error: an optional source range and a
// message. The position is optional because some program-level errors
// (missing/duplicate main) have no single offending node.
type Diagnostic struct {
	Pos     *token.PosRange
	Message string
}

// Error renders "{pos}\n\t{message}", with "?" standing in for a missing
// position, matching the original's Error::fmt.
func (d *Diagnostic) Error() string {
	pos := "?"
	if d.Pos != nil {
		pos = d.Pos.String()
	}
	return fmt.Sprintf("%s\n\t%s", pos, d.Message)
}

// List is a non-empty ordered list of Diagnostics; it is itself an error
// so callers can propagate "checking failed" with the full detail intact.
type List []*Diagnostic

func (l List) Error() string {
	if len(l) == 0 {
		return "semantic analysis failed"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "semantic analysis failed with %d errors:\n", len(l))
	for i, d := range l {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.Error())
	}
	return sb.String()
}

// New builds a positioned Diagnostic.
func New(pos token.PosRange, format string, args ...any) *Diagnostic {
	return &Diagnostic{Pos: &pos, Message: fmt.Sprintf(format, args...)}
}

// NewUnpositioned builds a Diagnostic with no source range, for
// program-level errors like missing/duplicate main.
func NewUnpositioned(format string, args ...any) *Diagnostic {
	return &Diagnostic{Message: fmt.Sprintf(format, args...)}
}
