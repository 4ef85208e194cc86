// Package lexer tokenizes JSONA source text. It does not validate
// escape sequences or character-class policies (spec.md §4.1) — the
// parser does that, the way the teacher's lexer trusts its parser to
// assemble meaning out of already-classified tokens.
package lexer

import (
	"fmt"

	"github.com/aledsdavies/jsona/pkgs/syntax"
)

// SourcePosition is a 1-based line/column pair, carried on every token
// for diagnostic rendering, the way the teacher's pkgs/lexer.Token
// carries a SourcePosition pair rather than re-deriving one later.
type SourcePosition struct {
	Line   int
	Column int
}

func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: a syntax.Kind tag, its exact source
// text, its byte range, and its starting line/column.
type Token struct {
	Kind  syntax.Kind
	Text  string
	Range syntax.TextRange
	Start SourcePosition
}
