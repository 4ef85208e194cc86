package dom

import "github.com/aledsdavies/jsona/pkgs/syntax"

// Build walks a parsed syntax tree's root and materializes its single
// document value into a DOM Node (spec.md §4.4). A root with no value at
// all — the empty-input case — yields an InvalidNode.
func Build(root *syntax.SyntaxNode) Node {
	for _, c := range root.SignificantChildren() {
		if n, ok := c.AsNode(); ok && n.Kind() == syntax.VALUE {
			return buildValue(n)
		}
	}
	return &InvalidNode{base{syntaxNode: root, annos: NewEntries()}}
}

// buildValue materializes a VALUE node: its own leading/trailing ANNOS
// blocks are merged into one Entries and attached to whatever concrete
// node the wrapped value produces.
func buildValue(valueNode *syntax.SyntaxNode) Node {
	annos := NewEntries()
	var errs []Error
	var innerNode *syntax.SyntaxNode
	var innerTok *syntax.SyntaxToken

	for _, c := range valueNode.SignificantChildren() {
		if n, ok := c.AsNode(); ok {
			if n.Kind() == syntax.ANNOS {
				errs = append(errs, collectAnnos(n, annos)...)
				continue
			}
			innerNode = n
			continue
		}
		if t, ok := c.AsToken(); ok {
			innerTok = t
		}
	}

	switch {
	case innerNode != nil && innerNode.Kind() == syntax.OBJECT:
		return buildObject(innerNode, valueNode, annos, errs)
	case innerNode != nil && innerNode.Kind() == syntax.ARRAY:
		return buildArray(innerNode, valueNode, annos, errs)
	case innerTok != nil:
		return buildScalar(innerTok, valueNode, annos, errs)
	default:
		return &InvalidNode{base{syntaxNode: valueNode, annos: annos, errs: errs}}
	}
}

func buildScalar(tok *syntax.SyntaxToken, valueNode *syntax.SyntaxNode, annos *Entries, errs []Error) Node {
	b := base{syntaxNode: valueNode, annos: annos}
	switch tok.Kind() {
	case syntax.NULL:
		b.errs = errs
		return &NullNode{b}
	case syntax.BOOL:
		b.errs = errs
		return &BoolNode{base: b, value: tok.Text() == "true"}
	case syntax.INTEGER, syntax.INTEGER_BIN, syntax.INTEGER_OCT, syntax.INTEGER_HEX:
		v, ierrs := decodeInteger(tok)
		b.errs = append(errs, ierrs...)
		return &IntegerNode{base: b, value: v, repr: reprForKind(tok.Kind())}
	case syntax.FLOAT:
		v, ferrs := decodeFloat(tok)
		b.errs = append(errs, ferrs...)
		return &FloatNode{base: b, value: v}
	case syntax.DOUBLE_QUOTE, syntax.SINGLE_QUOTE:
		s, ok := unescapeQuoted(tok.Text())
		if !ok {
			errs = append(errs, Error{Kind: ErrInvalidEscape, Range: tok.Range(), Message: "invalid escape sequence in string"})
		}
		b.errs = errs
		return &StrNode{base: b, value: s}
	case syntax.BACKTICK_QUOTE:
		b.errs = errs
		return &StrNode{base: b, value: unescapeBacktick(tok.Text())}
	default:
		b.errs = errs
		return &InvalidNode{b}
	}
}

func buildObject(node, valueNode *syntax.SyntaxNode, annos *Entries, errs []Error) Node {
	entries := NewEntries()
	seenEntry := false
	for _, c := range node.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.ANNOS:
			// Only the block right after "{" belongs to the object; a
			// misplaced "@" block between entries is dropped.
			if !seenEntry {
				errs = append(errs, collectAnnos(n, annos)...)
			}
		case syntax.ENTRY:
			seenEntry = true
			key, val, eerrs := buildEntry(n)
			errs = append(errs, eerrs...)
			if _, conflict := entries.Add(key, val); conflict {
				errs = append(errs, Error{
					Kind:    ErrConflictingKeys,
					Range:   keyRange(key),
					Message: "duplicate key \"" + key.Text() + "\"",
				})
			}
		}
	}
	layout := Inline
	if directlyMultiline(node) {
		layout = Multiline
	}
	return &ObjectNode{base: base{syntaxNode: valueNode, annos: annos, errs: errs}, entries: entries, layout: layout}
}

func buildEntry(entryNode *syntax.SyntaxNode) (Key, Node, []Error) {
	var key Key
	var val Node
	var errs []Error
	for _, c := range entryNode.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.KEY:
			k, kerrs := buildKey(n)
			key = k
			errs = append(errs, kerrs...)
		case syntax.VALUE:
			val = buildValue(n)
		}
	}
	if val == nil {
		val = &InvalidNode{base{annos: NewEntries()}}
	}
	return key, val, errs
}

func buildArray(node, valueNode *syntax.SyntaxNode, annos *Entries, errs []Error) Node {
	var items []Node
	for _, c := range node.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.ANNOS:
			errs = append(errs, collectAnnos(n, annos)...)
		case syntax.VALUE:
			items = append(items, buildValue(n))
		}
	}
	layout := Inline
	if directlyMultiline(node) {
		layout = Multiline
	}
	return &ArrayNode{base: base{syntaxNode: valueNode, annos: annos, errs: errs}, items: items, layout: layout}
}

// buildKey materializes a KEY node's single backing token into a Key.
func buildKey(keyNode *syntax.SyntaxNode) (Key, []Error) {
	children := keyNode.SignificantChildren()
	if len(children) == 0 {
		return Key{}, nil
	}
	tok, ok := children[0].AsToken()
	if !ok {
		return Key{}, nil
	}
	switch tok.Kind() {
	case syntax.IDENT, syntax.NULL, syntax.BOOL,
		syntax.INTEGER, syntax.INTEGER_BIN, syntax.INTEGER_OCT, syntax.INTEGER_HEX:
		return Key{text: tok.Text(), valid: true, token: tok}, nil
	case syntax.DOUBLE_QUOTE, syntax.SINGLE_QUOTE:
		text, ok := unescapeQuoted(tok.Text())
		var errs []Error
		if !ok {
			errs = append(errs, Error{Kind: ErrInvalidEscape, Range: tok.Range(), Message: "invalid escape sequence in key"})
		}
		return Key{text: text, valid: ok, token: tok}, errs
	case syntax.BACKTICK_QUOTE:
		return Key{text: unescapeBacktick(tok.Text()), valid: true, token: tok}, nil
	default:
		return Key{token: tok}, nil
	}
}

// collectAnnos walks an ANNOS node's "@name(value)?" children into an
// Entries container. An annotation with no parenthesized value is given
// an implicit Null, matching how the grammar treats a bare "@name" as a
// presence flag rather than requiring every annotation to carry data.
func collectAnnos(annosNode *syntax.SyntaxNode, out *Entries) []Error {
	var errs []Error
	for _, c := range annosNode.SignificantChildren() {
		n, ok := c.AsNode()
		if !ok || n.Kind() != syntax.ANNO {
			continue
		}
		var key Key
		var val Node
		for _, cc := range n.SignificantChildren() {
			kn, ok := cc.AsNode()
			if !ok {
				continue
			}
			switch kn.Kind() {
			case syntax.KEY:
				k, kerrs := buildKey(kn)
				key = k
				errs = append(errs, kerrs...)
			case syntax.VALUE:
				val = buildValue(kn)
			}
		}
		if val == nil {
			val = &NullNode{base{annos: NewEntries()}}
		}
		if _, conflict := out.Add(key, val); conflict {
			errs = append(errs, Error{
				Kind:    ErrConflictingKeys,
				Range:   keyRange(key),
				Message: "duplicate annotation \"" + key.Text() + "\"",
			})
		}
	}
	return errs
}

func keyRange(key Key) syntax.TextRange {
	if tok, ok := key.Syntax(); ok {
		return tok.Range()
	}
	return syntax.TextRange{}
}

// directlyMultiline reports whether a NEWLINE token appears as a direct
// child of node — i.e. the node's own delimiters span more than one
// source line, irrespective of whether any nested value also does
// (spec.md §3 "Array"/"Object" kind).
func directlyMultiline(node *syntax.SyntaxNode) bool {
	for _, c := range node.Children() {
		if t, ok := c.AsToken(); ok && t.Kind() == syntax.NEWLINE {
			return true
		}
	}
	return false
}
