package dom

import "github.com/aledsdavies/jsona/pkgs/syntax"

// ErrorKind tags the reason a Node carries a deferred error.
type ErrorKind int

const (
	ErrConflictingKeys ErrorKind = iota
	ErrInvalidEscape
	ErrUnexpectedSyntax
)

// Error is a deferred DOM-level problem discovered while materializing a
// node — distinct from a syntax.Error, which the parser records against
// raw tokens. A node can be syntactically clean and still carry one of
// these (a duplicate key, for instance, parses without a single syntax
// error).
type Error struct {
	Kind    ErrorKind
	Range   syntax.TextRange
	Message string
}

func (e Error) Error() string { return e.Message }
