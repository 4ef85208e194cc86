package dom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/jsona/pkgs/dom"
	"github.com/aledsdavies/jsona/pkgs/parser"
)

func buildFrom(t *testing.T, src string) dom.Node {
	t.Helper()
	p := parser.Parse(src)
	require.Empty(t, p.Errors, "source produced unexpected syntax errors: %v", p.Errors)
	return dom.Build(p.IntoSyntax())
}

func TestBuildScalars(t *testing.T) {
	cases := []struct {
		src  string
		kind dom.NodeKind
	}{
		{"null", dom.KindNull},
		{"true", dom.KindBool},
		{"false", dom.KindBool},
		{"42", dom.KindInteger},
		{"0x2a", dom.KindInteger},
		{"0b101010", dom.KindInteger},
		{"0o52", dom.KindInteger},
		{"3.14", dom.KindFloat},
		{`"hi"`, dom.KindStr},
		{"'hi'", dom.KindStr},
		{"`hi`", dom.KindStr},
		{"[]", dom.KindArray},
		{"{}", dom.KindObject},
	}
	for _, c := range cases {
		n := buildFrom(t, c.src)
		assert.Equal(t, c.kind, n.NodeKind(), "source %q", c.src)
		assert.Empty(t, n.Errors(), "source %q", c.src)
	}
}

func TestBuildIntegerReprPreserved(t *testing.T) {
	n := buildFrom(t, "0xFF").(*dom.IntegerNode)
	assert.Equal(t, dom.ReprHex, n.Repr())
	assert.Equal(t, uint64(255), n.Value().AsUint64())
}

func TestBuildNegativeInteger(t *testing.T) {
	n := buildFrom(t, "-7").(*dom.IntegerNode)
	assert.True(t, n.Value().IsNegative())
	assert.Equal(t, int64(-7), n.Value().AsInt64())
}

func TestBuildObjectPreservesOrderAndDuplicates(t *testing.T) {
	n := buildFrom(t, `{a: 1, b: 2, a: 3}`).(*dom.ObjectNode)
	require.Equal(t, 3, n.Entries().Len())

	v, ok := n.Get("a")
	require.True(t, ok)
	assert.Equal(t, uint64(1), v.(*dom.IntegerNode).Value().AsUint64())

	errs := dom.Validate(n)
	require.Len(t, errs, 1)
	assert.Equal(t, dom.ErrConflictingKeys, errs[0].Kind)
}

func TestBuildArrayItemAnnotations(t *testing.T) {
	n := buildFrom(t, `[1, 2, @tag(true) 3]`).(*dom.ArrayNode)
	require.Len(t, n.Items(), 3)
	third := n.Items()[2]
	assert.Equal(t, uint64(3), third.(*dom.IntegerNode).Value().AsUint64())

	tag, ok := third.Annotations().Get("tag")
	require.True(t, ok)
	assert.Equal(t, dom.KindBool, tag.NodeKind())
	assert.True(t, tag.(*dom.BoolNode).Value())
}

func TestBuildStringEscapes(t *testing.T) {
	n := buildFrom(t, `"a\nb\tA"`).(*dom.StrNode)
	assert.Equal(t, "a\nb\tA", n.Value())
}

func TestBuildStringLiteralUTF8Passthrough(t *testing.T) {
	n := buildFrom(t, `"😀"`).(*dom.StrNode)
	assert.Equal(t, "\U0001F600", n.Value())
	assert.Empty(t, n.Errors())
}

func TestBuildStringSurrogatePairEscape(t *testing.T) {
	n := buildFrom(t, "\"\\uD83D\\uDE00\"").(*dom.StrNode)
	assert.Equal(t, "\U0001F600", n.Value())
	assert.Empty(t, n.Errors())
}

func TestBuildStringLoneSurrogateIsInvalid(t *testing.T) {
	p := parser.Parse(`"\uD83D"`)
	require.Len(t, p.Errors, 1)
	n := dom.Build(p.IntoSyntax()).(*dom.StrNode)
	errs := dom.Validate(n)
	require.Len(t, errs, 1)
	assert.Equal(t, dom.ErrInvalidEscape, errs[0].Kind)
}

func TestBuildBacktickRaw(t *testing.T) {
	n := buildFrom(t, "`a\\nb`").(*dom.StrNode)
	assert.Equal(t, `a\nb`, n.Value())
}

func TestLayoutInlineVsMultiline(t *testing.T) {
	inline := buildFrom(t, `{a: 1, b: 2}`).(*dom.ObjectNode)
	assert.Equal(t, dom.Inline, inline.Layout())

	multiline := buildFrom(t, "{\n  a: 1,\n  b: 2,\n}").(*dom.ObjectNode)
	assert.Equal(t, dom.Multiline, multiline.Layout())
}

func TestLookupDescendsObjectsAndArrays(t *testing.T) {
	n := buildFrom(t, `{a: {b: [10, 20, 30]}}`)
	found, ok := dom.Lookup(n, dom.Field("a"), dom.Field("b"), dom.Elem(1))
	require.True(t, ok)
	assert.Equal(t, uint64(20), found.(*dom.IntegerNode).Value().AsUint64())

	_, ok = dom.Lookup(n, dom.Field("missing"))
	assert.False(t, ok)
}

func TestValidateOrdersErrorsBySourcePosition(t *testing.T) {
	// The outer object's own conflict (second "a", offset 18) is collected
	// before its child's (second "x", offset 11); Validate must reorder them.
	n := buildFrom(t, `{a: {x: 1, x: 2}, a: 3}`)
	errs := dom.Validate(n)
	require.Len(t, errs, 2)
	if diff := cmp.Diff([]uint32{11, 18}, []uint32{errs[0].Range.Start, errs[1].Range.Start}); diff != "" {
		t.Errorf("errors not ordered by source position (-want +got):\n%s", diff)
	}
	assert.Equal(t, dom.ErrConflictingKeys, errs[0].Kind)
	assert.Equal(t, dom.ErrConflictingKeys, errs[1].Kind)
}
