package syntax

import "fmt"

// Kind tags every node and token in the green/red syntax tree. It plays
// the role the teacher's pkgs/lexer.TokenType plays for tokens, widened
// to also tag the structural nodes the parser builds on top of them.
type Kind int

const (
	// ERROR wraps a byte or token sequence the parser could not place.
	ERROR Kind = iota

	// Structural nodes.
	ROOT
	OBJECT
	ARRAY
	ENTRY
	KEY
	VALUE
	ANNOS
	ANNO

	// Scalar value nodes/tokens.
	NULL
	BOOL
	INTEGER
	INTEGER_BIN
	INTEGER_OCT
	INTEGER_HEX
	FLOAT
	DOUBLE_QUOTE
	SINGLE_QUOTE
	BACKTICK_QUOTE
	IDENT

	// Punctuation tokens.
	BRACE_START
	BRACE_END
	BRACKET_START
	BRACKET_END
	PARENTHESES_START
	PARENTHESES_END
	COLON
	COMMA
	AT

	// Trivia tokens, attached to the tree but ignored by the DOM builder.
	WHITESPACE
	NEWLINE
	COMMENT_LINE
	COMMENT_BLOCK

	// EOF never appears inside a GreenNode; it only terminates the
	// lexer's token stream.
	EOF
)

var kindNames = [...]string{
	ERROR:             "ERROR",
	ROOT:              "ROOT",
	OBJECT:            "OBJECT",
	ARRAY:             "ARRAY",
	ENTRY:             "ENTRY",
	KEY:               "KEY",
	VALUE:             "VALUE",
	ANNOS:             "ANNOS",
	ANNO:              "ANNO",
	NULL:              "NULL",
	BOOL:              "BOOL",
	INTEGER:           "INTEGER",
	INTEGER_BIN:       "INTEGER_BIN",
	INTEGER_OCT:       "INTEGER_OCT",
	INTEGER_HEX:       "INTEGER_HEX",
	FLOAT:             "FLOAT",
	DOUBLE_QUOTE:      "DOUBLE_QUOTE",
	SINGLE_QUOTE:      "SINGLE_QUOTE",
	BACKTICK_QUOTE:    "BACKTICK_QUOTE",
	IDENT:             "IDENT",
	BRACE_START:       "BRACE_START",
	BRACE_END:         "BRACE_END",
	BRACKET_START:     "BRACKET_START",
	BRACKET_END:       "BRACKET_END",
	PARENTHESES_START: "PARENTHESES_START",
	PARENTHESES_END:   "PARENTHESES_END",
	COLON:             "COLON",
	COMMA:             "COMMA",
	AT:                "AT",
	WHITESPACE:        "WHITESPACE",
	NEWLINE:           "NEWLINE",
	COMMENT_LINE:      "COMMENT_LINE",
	COMMENT_BLOCK:     "COMMENT_BLOCK",
	EOF:               "EOF",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether tokens of this kind carry no semantic
// meaning and are skipped by the DOM builder, per spec.md's "Trivia"
// glossary entry.
func (k Kind) IsTrivia() bool {
	switch k {
	case WHITESPACE, NEWLINE, COMMENT_LINE, COMMENT_BLOCK:
		return true
	default:
		return false
	}
}

// IsString reports whether k is one of the three string-quoting kinds.
func (k Kind) IsString() bool {
	switch k {
	case DOUBLE_QUOTE, SINGLE_QUOTE, BACKTICK_QUOTE:
		return true
	default:
		return false
	}
}

// IsInteger reports whether k is one of the four integer-radix kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case INTEGER, INTEGER_BIN, INTEGER_OCT, INTEGER_HEX:
		return true
	default:
		return false
	}
}
