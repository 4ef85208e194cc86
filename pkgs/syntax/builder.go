package syntax

// Builder assembles a GreenNode tree bottom-up: StartNode pushes a new
// frame, Token appends a leaf to the innermost open frame, and
// FinishNode pops the frame into a GreenNode appended to its parent.
//
// This generalizes the teacher's pkgs/ast/builder.go constructor
// functions (NewProgram, Var, Cmd, Shell, Text, ...), which assemble one
// fixed AST shape field-by-field, into assembling an arbitrary tree keyed
// by Kind instead of a fixed Go struct per node type.
type Builder struct {
	stack [][]GreenElement
}

// NewBuilder returns an empty builder ready for a single root node.
func NewBuilder() *Builder {
	return &Builder{stack: make([][]GreenElement, 0, 8)}
}

// StartNode opens a new frame that subsequent Token/StartNode calls
// populate until the matching FinishNode.
func (b *Builder) StartNode() {
	b.stack = append(b.stack, nil)
}

// Token appends a leaf token to the innermost open frame.
func (b *Builder) Token(kind Kind, text string) {
	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], NewGreenToken(kind, text))
}

// FinishNode closes the innermost frame, wraps it in a GreenNode of the
// given kind, and appends that node to the new innermost frame (its
// parent). Calling FinishNode with no open frame is a programmer error.
func (b *Builder) FinishNode(kind Kind) *GreenNode {
	top := len(b.stack) - 1
	children := b.stack[top]
	b.stack = b.stack[:top]
	node := NewGreenNode(kind, children)
	if len(b.stack) > 0 {
		parent := len(b.stack) - 1
		b.stack[parent] = append(b.stack[parent], node)
	}
	return node
}

// Checkpoint marks a position within the current frame that
// WrapBetween can later retroactively wrap in a new node, for a caller
// that decides a node's kind only after emitting some of its children.
// pkgs/parser does not use it: every node it builds is started before
// its first child.
type Checkpoint int

// Checkpoint returns a marker for the current length of the innermost
// open frame.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.stack) - 1
	return Checkpoint(len(b.stack[top]))
}

// WrapBetween wraps every element appended to the innermost frame since
// checkpoint into a new node of kind, replacing them in place.
func (b *Builder) WrapBetween(checkpoint Checkpoint, kind Kind) {
	top := len(b.stack) - 1
	since := b.stack[top][checkpoint:]
	wrapped := make([]GreenElement, len(since))
	copy(wrapped, since)
	node := NewGreenNode(kind, wrapped)
	b.stack[top] = append(b.stack[top][:checkpoint], node)
}
