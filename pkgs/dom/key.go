package dom

import "github.com/aledsdavies/jsona/pkgs/syntax"

// Key identifies an object entry or an annotation. It is either
// synthesized directly from a Go string (always valid) or derived from
// a backing syntax token — an identifier, an unsigned integer literal,
// a null/true/false keyword, or a quoted string (spec.md §3 "Keys").
//
// The unescaped value is computed eagerly at construction time rather
// than lazily through an interior-mutable cell: spec.md §9's design
// notes explicitly allow trading a little up-front work for a simpler,
// cell-free value type, and Go's lack of a borrow checker makes the
// eager version strictly easier to reason about.
type Key struct {
	text      string
	valid     bool
	synthetic bool
	token     *syntax.SyntaxToken
}

// NewKey synthesizes a Key directly from a Go string. Synthesized keys
// are always valid and carry no backing syntax.
func NewKey(text string) Key {
	return Key{text: text, valid: true, synthetic: true}
}

// Text returns the key's unescaped string value.
func (k Key) Text() string { return k.text }

// IsValid reports whether the key's backing syntax (if any) decoded
// without error. Synthesized keys are always valid.
func (k Key) IsValid() bool { return k.valid }

// IsSynthetic reports whether the key has no backing syntax token.
func (k Key) IsSynthetic() bool { return k.synthetic }

// Syntax returns the key's backing token, if any.
func (k Key) Syntax() (*syntax.SyntaxToken, bool) {
	if k.token == nil {
		return nil, false
	}
	return k.token, true
}

// Equal compares two keys by unescaped value. Two invalid keys are
// never equal to each other or to anything else, even if their
// (possibly empty, post-failure) text values happen to coincide
// (spec.md §9 "Key hashing with invalid keys").
func (k Key) Equal(other Key) bool {
	if !k.valid || !other.valid {
		return false
	}
	return k.text == other.text
}
