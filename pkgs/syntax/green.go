package syntax

// TextRange is a half-open byte range [Start, End) within the source.
// Offsets are 32-bit per spec.md's 4GiB input ceiling.
type TextRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes the range spans.
func (r TextRange) Len() uint32 { return r.End - r.Start }

// GreenElement is either a *GreenNode or a *GreenToken. The green tree
// never stores absolute offsets; TextLen is derived bottom-up from the
// literal text of tokens, the way the teacher's AST never needed
// positions either and reconstructed them on demand only where a
// diagnostic needed one (pkgs/lexer.Token carries Line/Column instead).
type GreenElement interface {
	Kind() Kind
	TextLen() uint32
	Text() string
	isGreen()
}

// GreenToken is a leaf: a kind tag plus the exact literal text it
// covers. Concatenating every GreenToken's Text in document order
// reproduces the source byte-for-byte (spec.md invariant 2).
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken constructs a leaf token. text is stored verbatim,
// including any surrounding whitespace that belongs to trivia tokens.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind      { return t.kind }
func (t *GreenToken) TextLen() uint32 { return uint32(len(t.text)) }
func (t *GreenToken) Text() string    { return t.text }
func (*GreenToken) isGreen()          {}

// GreenNode is an interior node: a kind tag plus an ordered sequence of
// child nodes/tokens. Nodes are immutable once built and safe to share
// by reference (spec.md §3 "Ownership & lifecycle").
type GreenNode struct {
	kind     Kind
	children []GreenElement
	textLen  uint32
}

// NewGreenNode constructs an interior node over already-built children.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	var total uint32
	for _, c := range children {
		total += c.TextLen()
	}
	return &GreenNode{kind: kind, children: children, textLen: total}
}

func (n *GreenNode) Kind() Kind          { return n.kind }
func (n *GreenNode) TextLen() uint32     { return n.textLen }
func (n *GreenNode) Children() []GreenElement { return n.children }
func (*GreenNode) isGreen()              {}

// Text concatenates the literal text of every descendant token, in
// document order. This is spec.md's loss-freedom invariant made
// directly checkable.
func (n *GreenNode) Text() string {
	var out []byte
	var walk func(GreenElement)
	walk = func(e GreenElement) {
		switch v := e.(type) {
		case *GreenToken:
			out = append(out, v.text...)
		case *GreenNode:
			for _, c := range v.children {
				walk(c)
			}
		}
	}
	walk(n)
	return string(out)
}
