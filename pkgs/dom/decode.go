package dom

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/aledsdavies/jsona/pkgs/lexer"
	"github.com/aledsdavies/jsona/pkgs/syntax"
)

// unescapeQuoted decodes a double- or single-quoted token's body,
// stripping the surrounding delimiters and resolving the backslash
// escapes the grammar allows. The parser has already flagged any
// malformed escape as a syntax.Error; this pass reports back only
// whether decoding fully succeeded, since the DOM's own deferred-error
// model (spec.md §4.4) only needs to know whether the node is clean.
func unescapeQuoted(raw string) (string, bool) {
	body := trimDelimiters(raw)
	var sb strings.Builder
	ok := true
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			ok = false
			break
		}
		switch body[i+1] {
		case '"':
			sb.WriteByte('"')
			i += 2
		case '\'':
			sb.WriteByte('\'')
			i += 2
		case '\\':
			sb.WriteByte('\\')
			i += 2
		case '/':
			sb.WriteByte('/')
			i += 2
		case 'b':
			sb.WriteByte('\b')
			i += 2
		case 'f':
			sb.WriteByte('\f')
			i += 2
		case 'n':
			sb.WriteByte('\n')
			i += 2
		case 'r':
			sb.WriteByte('\r')
			i += 2
		case 't':
			sb.WriteByte('\t')
			i += 2
		case 'u':
			if i+6 <= len(body) {
				if r, valid := parseHex4(body[i+2 : i+6]); valid {
					if utf16.IsSurrogate(r) {
						// A high surrogate must be immediately followed by a
						// low surrogate \u escape; combine the pair into the
						// single rune it represents (spec.md §8: \uD83D
						// followed by \uDE00 decodes as U+1F600). Anything else is a lone
						// surrogate, which has no valid Unicode scalar value.
						if i+12 <= len(body) && body[i+6] == '\\' && body[i+7] == 'u' {
							if low, lowValid := parseHex4(body[i+8 : i+12]); lowValid {
								if combined := utf16.DecodeRune(r, low); combined != unicode.ReplacementChar {
									sb.WriteRune(combined)
									i += 12
									continue
								}
							}
						}
						ok = false
						i += 6
						continue
					}
					sb.WriteRune(r)
					i += 6
					continue
				}
			}
			ok = false
			i += 2
		default:
			ok = false
			i += 2
		}
	}
	return sb.String(), ok
}

// unescapeBacktick strips a backtick string's delimiters and a single
// "\r\n" or "\n" immediately after the opening backtick. Backtick bodies
// are otherwise raw: no escape processing, other newlines kept verbatim.
func unescapeBacktick(raw string) string {
	return lexer.StripCR(trimDelimiters(raw))
}

func trimDelimiters(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return ""
}

func parseHex4(s string) (rune, bool) {
	var v rune
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

func stripRunSeparators(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// decodeInteger parses an integer token of any of the four radixes into
// its two-variant Integer sum (spec.md §3, §9). A sign prefix only ever
// produces Negative for a plain decimal literal; non-decimal radices
// are always unsigned positives (spec.md §4.4), so a stray sign on a
// 0b/0o/0x literal is dropped rather than flipping its value negative.
func decodeInteger(tok *syntax.SyntaxToken) (Integer, []Error) {
	text := tok.Text()
	neg := false
	body := text
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	base := 10
	switch tok.Kind() {
	case syntax.INTEGER_BIN:
		base = 2
		neg = false
		body = body[2:]
	case syntax.INTEGER_OCT:
		base = 8
		neg = false
		body = body[2:]
	case syntax.INTEGER_HEX:
		base = 16
		neg = false
		body = body[2:]
	}
	body = stripRunSeparators(body)

	if neg {
		v, err := strconv.ParseInt("-"+body, base, 64)
		if err != nil {
			return Negative(0), []Error{{Kind: ErrUnexpectedSyntax, Range: tok.Range(), Message: "integer literal out of range"}}
		}
		return Negative(v), nil
	}
	v, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		return Positive(0), []Error{{Kind: ErrUnexpectedSyntax, Range: tok.Range(), Message: "integer literal out of range"}}
	}
	return Positive(v), nil
}

// decodeFloat parses a float token's text, tolerating the grammar's
// underscore digit separators that strconv does not.
func decodeFloat(tok *syntax.SyntaxToken) (float64, []Error) {
	body := stripRunSeparators(tok.Text())
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, []Error{{Kind: ErrUnexpectedSyntax, Range: tok.Range(), Message: "float literal out of range"}}
	}
	return v, nil
}
