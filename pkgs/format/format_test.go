package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/jsona/pkgs/format"
	"github.com/aledsdavies/jsona/pkgs/parser"
)

func TestFormatInlineObjectRoundTrips(t *testing.T) {
	src := `{a: 1, b: 2}`
	p := parser.Parse(src)
	require.Empty(t, p.Errors)
	out := format.Format(p.IntoSyntax(), format.Options{IndentString: "  ", TrailingNewline: false})
	assert.Equal(t, src, out)
}

func TestFormatMultilineObjectReindents(t *testing.T) {
	src := "{\n    a: 1,\n    b: 2,\n}"
	p := parser.Parse(src)
	require.Empty(t, p.Errors)
	out := format.Format(p.IntoSyntax(), format.Options{IndentString: "  ", TrailingNewline: false})
	assert.Equal(t, "{\n  a: 1,\n  b: 2,\n}", out)
}

func TestFormatPreservesAnnotations(t *testing.T) {
	src := `[1, 2, @tag(true) 3]`
	p := parser.Parse(src)
	require.Empty(t, p.Errors)
	out := format.Format(p.IntoSyntax(), format.Options{IndentString: "  ", TrailingNewline: false})
	assert.Equal(t, src, out)
}

func TestFormatAddsTrailingNewlineByDefault(t *testing.T) {
	p := parser.Parse(`{}`)
	out := format.Format(p.IntoSyntax(), format.DefaultOptions())
	assert.Equal(t, "{}\n", out)
}

func TestFormatPreservesIntegerRadix(t *testing.T) {
	src := `0xFF`
	p := parser.Parse(src)
	require.Empty(t, p.Errors)
	out := format.Format(p.IntoSyntax(), format.Options{TrailingNewline: false})
	assert.Equal(t, src, out)
}
