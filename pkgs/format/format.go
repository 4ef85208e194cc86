// Package format reconstructs JSONA source text from a syntax tree,
// the `format_syntax(syntax, options) -> string` contract spec.md §6
// leaves to an external collaborator. It is grounded on the teacher's
// pkgs/generator, which walks an ast.Program and emits text through
// text/template; this package walks a syntax.SyntaxNode and emits text
// directly, since JSONA's output is the same language as its input
// rather than a different target language the way devcmd generates Go.
//
// The walk re-derives canonical spacing from each container's own
// Inline/Multiline shape; it does not echo the tree's trivia tokens
// back verbatim, so comments and non-canonical source whitespace are
// not preserved by formatting.
package format

import (
	"strings"

	"github.com/aledsdavies/jsona/pkgs/syntax"
)

// Options governs how a Multiline container is re-indented. An Inline
// container (per the tree's own NEWLINE trivia) is always rendered on
// one line regardless of Options, since reflowing line breaks is
// explicitly out of scope (spec.md §6).
type Options struct {
	IndentString    string
	TrailingNewline bool
}

// DefaultOptions reproduces the input's own structure one-to-one: two-
// space indents, and a trailing newline the way most text editors and
// `gofmt` itself leave one.
func DefaultOptions() Options {
	return Options{IndentString: "  ", TrailingNewline: true}
}

// Format renders root's document value back to JSONA source text.
func Format(root *syntax.SyntaxNode, opts Options) string {
	var sb strings.Builder
	for _, c := range root.SignificantChildren() {
		if n, ok := c.AsNode(); ok && n.Kind() == syntax.VALUE {
			formatValue(&sb, n, 0, opts)
			break
		}
	}
	out := sb.String()
	if opts.TrailingNewline && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func formatValue(sb *strings.Builder, valueNode *syntax.SyntaxNode, depth int, opts Options) {
	var leading, trailing *syntax.SyntaxNode
	var innerNode *syntax.SyntaxNode
	var innerTok *syntax.SyntaxToken

	var annosSeen int
	for _, c := range valueNode.SignificantChildren() {
		if n, ok := c.AsNode(); ok {
			if n.Kind() == syntax.ANNOS {
				if annosSeen == 0 {
					leading = n
				} else {
					trailing = n
				}
				annosSeen++
				continue
			}
			innerNode = n
			continue
		}
		if t, ok := c.AsToken(); ok {
			innerTok = t
		}
	}

	if leading != nil {
		formatAnnos(sb, leading, depth, opts)
		sb.WriteByte(' ')
	}

	switch {
	case innerNode != nil && innerNode.Kind() == syntax.OBJECT:
		formatObject(sb, innerNode, depth, opts)
	case innerNode != nil && innerNode.Kind() == syntax.ARRAY:
		formatArray(sb, innerNode, depth, opts)
	case innerTok != nil:
		sb.WriteString(innerTok.Text())
	}

	if trailing != nil {
		sb.WriteByte(' ')
		formatAnnos(sb, trailing, depth, opts)
	}
}

func formatAnnos(sb *strings.Builder, annosNode *syntax.SyntaxNode, depth int, opts Options) {
	first := true
	for _, c := range annosNode.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok || n.Kind() != syntax.ANNO {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteByte('@')
		var val *syntax.SyntaxNode
		for _, cc := range n.SignificantChildren() {
			if kn, ok := cc.AsNode(); ok {
				switch kn.Kind() {
				case syntax.KEY:
					sb.WriteString(kn.Text())
				case syntax.VALUE:
					val = kn
				}
			}
		}
		if val != nil {
			sb.WriteByte('(')
			formatValue(sb, val, depth, opts)
			sb.WriteByte(')')
		}
	}
}

func formatObject(sb *strings.Builder, node *syntax.SyntaxNode, depth int, opts Options) {
	var entries []*syntax.SyntaxNode
	var ownAnnos *syntax.SyntaxNode
	for _, c := range node.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.ANNOS:
			ownAnnos = n
		case syntax.ENTRY:
			entries = append(entries, n)
		}
	}

	sb.WriteByte('{')
	if ownAnnos != nil {
		sb.WriteByte(' ')
		formatAnnos(sb, ownAnnos, depth, opts)
	}
	if len(entries) == 0 {
		if ownAnnos != nil {
			sb.WriteByte(' ')
		}
		sb.WriteByte('}')
		return
	}

	if !hasDirectNewline(node) {
		if ownAnnos != nil {
			sb.WriteByte(' ')
		}
		for i, e := range entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatEntry(sb, e, depth, opts)
		}
		sb.WriteByte('}')
		return
	}

	sb.WriteByte('\n')
	for _, e := range entries {
		writeIndent(sb, depth+1, opts)
		formatEntry(sb, e, depth+1, opts)
		sb.WriteString(",\n")
	}
	writeIndent(sb, depth, opts)
	sb.WriteByte('}')
}

func formatEntry(sb *strings.Builder, entryNode *syntax.SyntaxNode, depth int, opts Options) {
	for _, c := range entryNode.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.KEY:
			sb.WriteString(n.Text())
			sb.WriteString(": ")
		case syntax.VALUE:
			formatValue(sb, n, depth, opts)
		}
	}
}

func formatArray(sb *strings.Builder, node *syntax.SyntaxNode, depth int, opts Options) {
	var items []*syntax.SyntaxNode
	var ownAnnos *syntax.SyntaxNode
	for _, c := range node.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.ANNOS:
			ownAnnos = n
		case syntax.VALUE:
			items = append(items, n)
		}
	}

	sb.WriteByte('[')
	if ownAnnos != nil {
		sb.WriteByte(' ')
		formatAnnos(sb, ownAnnos, depth, opts)
	}
	if len(items) == 0 {
		if ownAnnos != nil {
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
		return
	}

	if !hasDirectNewline(node) {
		if ownAnnos != nil {
			sb.WriteByte(' ')
		}
		for i, item := range items {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatValue(sb, item, depth, opts)
		}
		sb.WriteByte(']')
		return
	}

	sb.WriteByte('\n')
	for _, item := range items {
		writeIndent(sb, depth+1, opts)
		formatValue(sb, item, depth+1, opts)
		sb.WriteString(",\n")
	}
	writeIndent(sb, depth, opts)
	sb.WriteByte(']')
}

func writeIndent(sb *strings.Builder, depth int, opts Options) {
	for i := 0; i < depth; i++ {
		sb.WriteString(opts.IndentString)
	}
}

// hasDirectNewline reports whether node's own immediate children (not
// any nested value's) include a NEWLINE trivia token, the same locality
// rule dom.Node's Layout uses to distinguish Inline from Multiline.
func hasDirectNewline(node *syntax.SyntaxNode) bool {
	for _, c := range node.Children() {
		if t, ok := c.AsToken(); ok && t.Kind() == syntax.NEWLINE {
			return true
		}
	}
	return false
}
