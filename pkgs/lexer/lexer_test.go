package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/jsona/pkgs/lexer"
	"github.com/aledsdavies/jsona/pkgs/syntax"
)

func kinds(tokens []lexer.Token) []syntax.Kind {
	out := make([]syntax.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeAlwaysEndsInEOF(t *testing.T) {
	toks := lexer.New("").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, syntax.EOF, toks[0].Kind)
}

func TestTokenizePunctuation(t *testing.T) {
	toks := lexer.New("{}[]():,@").Tokenize()
	assert.Equal(t, []syntax.Kind{
		syntax.BRACE_START, syntax.BRACE_END,
		syntax.BRACKET_START, syntax.BRACKET_END,
		syntax.PARENTHESES_START, syntax.PARENTHESES_END,
		syntax.COLON, syntax.COMMA, syntax.AT,
		syntax.EOF,
	}, kinds(toks))
}

func TestTokenizeKeywords(t *testing.T) {
	toks := lexer.New("null true false").Tokenize()
	assert.Equal(t, []syntax.Kind{
		syntax.NULL, syntax.WHITESPACE, syntax.BOOL, syntax.WHITESPACE, syntax.BOOL, syntax.EOF,
	}, kinds(toks))
}

func TestTokenizeRadixIntegers(t *testing.T) {
	cases := map[string]syntax.Kind{
		"0b101": syntax.INTEGER_BIN,
		"0o17":  syntax.INTEGER_OCT,
		"0xFF":  syntax.INTEGER_HEX,
		"42":    syntax.INTEGER,
		"-7":    syntax.INTEGER,
		"+7":    syntax.INTEGER,
	}
	for src, want := range cases {
		toks := lexer.New(src).Tokenize()
		require.Len(t, toks, 2, "source %q", src)
		assert.Equal(t, want, toks[0].Kind, "source %q", src)
		assert.Equal(t, src, toks[0].Text)
	}
}

func TestTokenizeFloats(t *testing.T) {
	cases := []string{"3.14", "1e10", "1.5e-3", "-2.5"}
	for _, src := range cases {
		toks := lexer.New(src).Tokenize()
		require.Len(t, toks, 2, "source %q", src)
		assert.Equal(t, syntax.FLOAT, toks[0].Kind, "source %q", src)
	}
}

func TestTokenizeUnderscoreSeparatorsPassThroughLexer(t *testing.T) {
	toks := lexer.New("1_000_000").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, syntax.INTEGER, toks[0].Kind)
	assert.Equal(t, "1_000_000", toks[0].Text)
}

func TestTokenizeStrings(t *testing.T) {
	cases := map[string]syntax.Kind{
		`"a\"b"`: syntax.DOUBLE_QUOTE,
		`'a\'b'`: syntax.SINGLE_QUOTE,
		"`a\nb`": syntax.BACKTICK_QUOTE,
	}
	for src, want := range cases {
		toks := lexer.New(src).Tokenize()
		require.Len(t, toks, 2, "source %q", src)
		assert.Equal(t, want, toks[0].Kind, "source %q", src)
		assert.Equal(t, src, toks[0].Text, "source %q", src)
	}
}

func TestTokenizeUnterminatedStringConsumesToEOF(t *testing.T) {
	toks := lexer.New(`"unterminated`).Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, syntax.DOUBLE_QUOTE, toks[0].Kind)
	assert.Equal(t, `"unterminated`, toks[0].Text)
}

func TestTokenizeComments(t *testing.T) {
	toks := lexer.New("// line\n/* block */").Tokenize()
	assert.Equal(t, []syntax.Kind{
		syntax.COMMENT_LINE, syntax.NEWLINE, syntax.COMMENT_BLOCK, syntax.EOF,
	}, kinds(toks))
}

func TestTokenizeUnknownByteBecomesError(t *testing.T) {
	toks := lexer.New("#").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, syntax.ERROR, toks[0].Kind)
	assert.Equal(t, "#", toks[0].Text)
}

func TestStripCR(t *testing.T) {
	assert.Equal(t, "rest", lexer.StripCR("\r\nrest"))
	assert.Equal(t, "rest", lexer.StripCR("\nrest"))
	assert.Equal(t, "\rrest", lexer.StripCR("\rrest"))
	assert.Equal(t, "", lexer.StripCR(""))
}
