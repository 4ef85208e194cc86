package syntax

// SyntaxNode is the red-tree view of a GreenNode: it layers an absolute
// byte offset and a parent link on top of the shared, offset-less green
// tree (spec.md §4.3).
type SyntaxNode struct {
	green  *GreenNode
	offset uint32
	parent *SyntaxNode
}

// NewRoot wraps a GreenNode as the root of a red tree.
func NewRoot(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0, parent: nil}
}

func (n *SyntaxNode) Kind() Kind       { return n.green.Kind() }
func (n *SyntaxNode) Green() *GreenNode { return n.green }
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// Range returns the node's absolute [start, end) byte range.
func (n *SyntaxNode) Range() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.TextLen()}
}

// Text returns the full literal text the node covers.
func (n *SyntaxNode) Text() string { return n.green.Text() }

// SyntaxElement is either a *SyntaxNode or a *SyntaxToken.
type SyntaxElement interface {
	Kind() Kind
	Range() TextRange
	AsNode() (*SyntaxNode, bool)
	AsToken() (*SyntaxToken, bool)
}

// SyntaxToken is the red-tree view of a GreenToken.
type SyntaxToken struct {
	green  *GreenToken
	offset uint32
	parent *SyntaxNode
}

func (t *SyntaxToken) Kind() Kind         { return t.green.Kind() }
func (t *SyntaxToken) Text() string       { return t.green.Text() }
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }
func (t *SyntaxToken) Range() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.TextLen()}
}

func (t *SyntaxToken) AsNode() (*SyntaxNode, bool)   { return nil, false }
func (t *SyntaxToken) AsToken() (*SyntaxToken, bool) { return t, true }

func (n *SyntaxNode) AsNode() (*SyntaxNode, bool)   { return n, true }
func (n *SyntaxNode) AsToken() (*SyntaxToken, bool) { return nil, false }

// Children returns the node's direct children as red elements, each
// carrying its own absolute offset computed from the running total of
// preceding siblings' text length and this node's own offset.
func (n *SyntaxNode) Children() []SyntaxElement {
	children := n.green.Children()
	out := make([]SyntaxElement, 0, len(children))
	running := n.offset
	for _, c := range children {
		switch v := c.(type) {
		case *GreenNode:
			out = append(out, &SyntaxNode{green: v, offset: running, parent: n})
		case *GreenToken:
			out = append(out, &SyntaxToken{green: v, offset: running, parent: n})
		}
		running += c.TextLen()
	}
	return out
}

// ChildNodes returns only the child elements that are nodes.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.Children() {
		if node, ok := c.AsNode(); ok {
			out = append(out, node)
		}
	}
	return out
}

// ChildTokens returns only the child elements that are tokens,
// including trivia.
func (n *SyntaxNode) ChildTokens() []*SyntaxToken {
	var out []*SyntaxToken
	for _, c := range n.Children() {
		if tok, ok := c.AsToken(); ok {
			out = append(out, tok)
		}
	}
	return out
}

// SignificantChildren returns children skipping trivia tokens, the view
// the DOM builder walks (spec.md §4.4 "skipping trivia and punctuation
// tokens").
func (n *SyntaxNode) SignificantChildren() []SyntaxElement {
	all := n.Children()
	out := make([]SyntaxElement, 0, len(all))
	for _, c := range all {
		if c.Kind().IsTrivia() {
			continue
		}
		out = append(out, c)
	}
	return out
}
