package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/jsona/pkgs/syntax"
)

func TestCheckIntegerZeroPadding(t *testing.T) {
	c := checkInteger(syntax.INTEGER, "01")
	assert.Equal(t, syntax.ERROR, c.kind)
	assert.Contains(t, c.errs, msgZeroPaddedInteger)
}

func TestCheckIntegerRadixNotZeroPadded(t *testing.T) {
	c := checkInteger(syntax.INTEGER_HEX, "0x0FF")
	assert.Equal(t, syntax.INTEGER_HEX, c.kind)
	assert.Empty(t, c.errs)
}

func TestCheckIntegerUnderscorePlacement(t *testing.T) {
	assert.Empty(t, checkInteger(syntax.INTEGER, "1_000").errs)
	assert.Contains(t, checkInteger(syntax.INTEGER, "_1000").errs, msgInvalidUnderscores)
	assert.Contains(t, checkInteger(syntax.INTEGER, "1000_").errs, msgInvalidUnderscores)
	assert.Contains(t, checkInteger(syntax.INTEGER, "1__000").errs, msgInvalidUnderscores)
}

func TestCheckFloatNeverRemapsKind(t *testing.T) {
	c := checkFloat("01.5")
	assert.Equal(t, syntax.FLOAT, c.kind)
	assert.Contains(t, c.errs, msgZeroPaddedNumber)
}

func TestCheckFloatUnderscoresPerSegment(t *testing.T) {
	assert.Empty(t, checkFloat("1_000.5_0e1_0").errs)
	assert.Contains(t, checkFloat("1.5_").errs, msgInvalidUnderscores)
	assert.Contains(t, checkFloat("1.5e_1").errs, msgInvalidUnderscores)
}

func TestCheckQuotedStringEscapes(t *testing.T) {
	assert.Empty(t, checkQuotedString(`"a\nb\tc"`))

	issues := checkQuotedString(`"\q"`)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, msgInvalidEscape, issues[0].message)
	}
}

func TestCheckQuotedStringUnicodeEscape(t *testing.T) {
	assert.Empty(t, checkQuotedString("\"\\u00e9\""))
	assert.NotEmpty(t, checkQuotedString(`"\u00zz"`))
}

func TestCheckQuotedStringSurrogatePair(t *testing.T) {
	assert.Empty(t, checkQuotedString("\"\\uD83D\\uDE00\""))
}

func TestCheckQuotedStringLoneHighSurrogate(t *testing.T) {
	issues := checkQuotedString(`"\uD83D"`)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, msgInvalidEscape, issues[0].message)
	}
}

func TestCheckQuotedStringLoneLowSurrogate(t *testing.T) {
	issues := checkQuotedString(`"\uDE00"`)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, msgInvalidEscape, issues[0].message)
	}
}

func TestCheckQuotedStringHighSurrogateFollowedByNonSurrogate(t *testing.T) {
	issues := checkQuotedString(`"\uD83DA"`)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, msgInvalidEscape, issues[0].message)
	}
}

func TestCheckQuotedStringControlVsDEL(t *testing.T) {
	control := checkQuotedString("\"a\x01b\"")
	if assert.Len(t, control, 1) {
		assert.Equal(t, msgInvalidControlChar, control[0].message)
	}

	del := checkQuotedString("\"a\x7fb\"")
	if assert.Len(t, del, 1) {
		assert.Equal(t, msgInvalidStringChar, del[0].message)
	}
}

func TestCheckBacktickStringAllowsRawNewlines(t *testing.T) {
	assert.Empty(t, checkBacktickString("`line one\nline two`"))
}

func TestCheckCommentRejectsControlCharsExceptTab(t *testing.T) {
	assert.Empty(t, checkComment("// ok\twith tab", false))
	assert.NotEmpty(t, checkComment("// bad\x01char", false))
	assert.Empty(t, checkComment("/* spans\nlines */", true))
}
