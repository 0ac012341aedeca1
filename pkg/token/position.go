// Package token holds the minimal source-position plumbing shared between
// the untyped AST and the diagnostics the checker produces. The lexer and
// parser that assign these positions are out of scope for this module;
// Position values simply pass through whatever upstream attached them.
package token

import "fmt"

// Position is a single line:column location in a source file.
type Position struct {
	Line   int
	Column int
}

// String renders a position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PosRange is a start/end pair, the unit every AST node carries its
// location as.
type PosRange struct {
	Start Position
	End   Position
}

// String renders a range as "start-end", or just "start" when the range is
// a single point.
func (r PosRange) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
