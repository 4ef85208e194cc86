// Package parser is a handwritten, error-recovering recursive descent
// parser for JSONA. It never aborts: on any mismatch it records a
// syntax.Error and keeps going, the way the teacher's pkgs/parser kept
// a Parser{input, tokens, pos} cursor and a running error list — except
// where the teacher ultimately bails out with a single joined error
// (spec.md §4.2 demands the opposite: always return a well-formed tree
// plus an ordered, deduplicated error list).
package parser

import (
	"github.com/aledsdavies/jsona/pkgs/lexer"
	"github.com/aledsdavies/jsona/pkgs/syntax"
)

// Result is the result of parsing: a lossless green tree plus every
// syntax error encountered, ordered by offset (spec.md §6).
type Result struct {
	Green  *syntax.GreenNode
	Errors []syntax.Error
}

// IntoSyntax returns the navigable red-tree view of the green tree.
func (p Result) IntoSyntax() *syntax.SyntaxNode {
	return syntax.NewRoot(p.Green)
}

// Parser walks a flat token stream (including trivia) and builds a
// green tree via syntax.Builder.
type Parser struct {
	tokens []lexer.Token
	pos    int
	b      *syntax.Builder
	errors []syntax.Error
}

// Parse tokenizes and parses source, always returning a well-formed
// tree (spec.md invariant 1).
func Parse(source string) Result {
	p := &Parser{
		tokens: lexer.New(source).Tokenize(),
		b:      syntax.NewBuilder(),
	}
	p.parseRoot()
	return Result{Green: p.b.FinishNode(syntax.ROOT), Errors: p.errors}
}

func (p *Parser) parseRoot() {
	p.b.StartNode() // becomes ROOT via the caller's FinishNode
	p.parseVwa()
	p.skipTrivia()
	for p.curKind() != syntax.EOF {
		p.addError(msgExpectedEOF)
		p.bumpAs(syntax.ERROR)
		p.skipTrivia()
	}
}

// --- token-stream primitives ---

func (p *Parser) curKind() syntax.Kind {
	return p.tokens[p.pos].Kind
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

// skipTrivia flushes every leading trivia token at the cursor into the
// currently open builder frame, leaving the cursor on a significant
// token (or EOF). Trivia therefore always becomes a child of whichever
// node is open at the moment it is encountered (spec.md "trivia-
// transparent").
func (p *Parser) skipTrivia() {
	for p.curKind().IsTrivia() {
		t := p.cur()
		if t.Kind == syntax.COMMENT_LINE || t.Kind == syntax.COMMENT_BLOCK {
			for _, issue := range checkComment(t.Text, t.Kind == syntax.COMMENT_BLOCK) {
				p.addErrorAt(syntax.TextRange{
					Start: t.Range.Start + uint32(issue.offset),
					End:   t.Range.Start + uint32(issue.offset) + 1,
				}, issue.message)
			}
		}
		p.b.Token(t.Kind, t.Text)
		p.pos++
	}
}

// bump consumes the current (assumed significant) token, emitting it
// with its own lexed kind.
func (p *Parser) bump() {
	t := p.cur()
	p.b.Token(t.Kind, t.Text)
	if p.curKind() != syntax.EOF {
		p.pos++
	}
}

// bumpAs consumes the current token but emits it under an overridden
// kind, used when a token is structurally misplaced or fails semantic
// validation (e.g. a zero-padded integer becomes syntax.ERROR).
func (p *Parser) bumpAs(kind syntax.Kind) {
	t := p.cur()
	p.b.Token(kind, t.Text)
	if p.curKind() != syntax.EOF {
		p.pos++
	}
}

func (p *Parser) at(kind syntax.Kind) bool { return p.curKind() == kind }

// addError records a diagnostic at the current token's range, deduping
// against the immediately preceding error if it shares the same range
// (spec.md §4.2 "Deduping").
func (p *Parser) addError(message string) {
	p.addErrorAt(p.cur().Range, message)
}

func (p *Parser) addErrorAt(rng syntax.TextRange, message string) {
	if n := len(p.errors); n > 0 && p.errors[n-1].Range == rng {
		return
	}
	p.errors = append(p.errors, syntax.Error{Range: rng, Message: message})
}

// --- grammar ---

// parseVwa parses `annos? value annos?` (value-with-annotations),
// wrapped in a VALUE node so the DOM builder can find a value's leading
// and trailing annotation blocks as direct siblings of the value itself
// (spec.md §4.4 step 1).
func (p *Parser) parseVwa() {
	p.b.StartNode() // VALUE
	p.skipTrivia()
	if p.at(syntax.AT) {
		p.parseAnnos()
		p.skipTrivia()
	}
	p.parseValueInner()
	p.skipTrivia()
	if p.at(syntax.AT) {
		p.parseAnnos()
	}
	p.b.FinishNode(syntax.VALUE)
}

func (p *Parser) parseValueInner() {
	switch k := p.curKind(); {
	case k == syntax.NULL, k == syntax.BOOL:
		p.bump()
	case k.IsInteger():
		check := checkInteger(k, p.cur().Text)
		for _, e := range check.errs {
			p.addError(e)
		}
		p.bumpAs(check.kind)
	case k == syntax.FLOAT:
		check := checkFloat(p.cur().Text)
		for _, e := range check.errs {
			p.addError(e)
		}
		p.bump()
	case k == syntax.DOUBLE_QUOTE, k == syntax.SINGLE_QUOTE:
		p.checkAndBumpQuoted()
	case k == syntax.BACKTICK_QUOTE:
		p.checkAndBumpBacktick()
	case k == syntax.BRACE_START:
		p.parseObject()
	case k == syntax.BRACKET_START:
		p.parseArray()
	case k == syntax.EOF:
		p.addError(msgUnexpectedEOF)
	default:
		p.addError(msgExpectedValue)
		p.bumpAs(syntax.ERROR)
	}
}

func (p *Parser) checkAndBumpQuoted() {
	t := p.cur()
	for _, issue := range checkQuotedString(t.Text) {
		p.addErrorAt(syntax.TextRange{
			Start: t.Range.Start + uint32(issue.offset),
			End:   t.Range.Start + uint32(issue.offset) + 1,
		}, issue.message)
	}
	p.bump()
}

func (p *Parser) checkAndBumpBacktick() {
	t := p.cur()
	for _, issue := range checkBacktickString(t.Text) {
		p.addErrorAt(syntax.TextRange{
			Start: t.Range.Start + uint32(issue.offset),
			End:   t.Range.Start + uint32(issue.offset) + 1,
		}, issue.message)
	}
	p.bump()
}

// parseKey parses `IDENT | null | bool | integer(radix) | string`,
// wrapped in a KEY node. A signed integer or "+"-prefixed float is
// rejected as a key (spec.md §4.2).
func (p *Parser) parseKey() {
	p.b.StartNode() // KEY
	switch k := p.curKind(); {
	case k == syntax.IDENT, k == syntax.NULL, k == syntax.BOOL:
		p.bump()
	case k.IsInteger():
		t := p.cur()
		signed := len(t.Text) > 0 && (t.Text[0] == '+' || t.Text[0] == '-')
		check := checkInteger(k, t.Text)
		for _, e := range check.errs {
			p.addError(e)
		}
		if signed {
			p.addError(msgExpectedIdentifier)
			p.bumpAs(syntax.ERROR)
		} else {
			p.bumpAs(check.kind)
		}
	case k == syntax.FLOAT:
		t := p.cur()
		plusSigned := len(t.Text) > 0 && t.Text[0] == '+'
		check := checkFloat(t.Text)
		for _, e := range check.errs {
			p.addError(e)
		}
		if plusSigned || len(check.errs) > 0 {
			p.addError(msgExpectedIdentifier)
			p.bumpAs(syntax.ERROR)
		} else {
			p.bump()
		}
	case k == syntax.DOUBLE_QUOTE, k == syntax.SINGLE_QUOTE:
		p.checkAndBumpQuoted()
	case k == syntax.BACKTICK_QUOTE:
		p.checkAndBumpBacktick()
	default:
		p.addError(msgExpectedIdentifier)
	}
	p.b.FinishNode(syntax.KEY)
}

// parseAnnos parses `( "@" key anno_val? )+`.
func (p *Parser) parseAnnos() {
	p.b.StartNode() // ANNOS
	for p.at(syntax.AT) {
		p.b.StartNode() // ANNO
		p.bump()        // '@'
		p.skipTrivia()
		p.parseKey()
		p.skipTrivia()
		if p.at(syntax.PARENTHESES_START) {
			p.bump()
			p.skipTrivia()
			p.parseVwa()
			p.skipTrivia()
			if p.at(syntax.PARENTHESES_END) {
				p.bump()
			} else {
				p.addError(msgExpectedRParen)
			}
		}
		p.b.FinishNode(syntax.ANNO)
		p.skipTrivia()
	}
	p.b.FinishNode(syntax.ANNOS)
}

// parseObject parses `"{" annos? ( entry ("," entry)* ","? )? "}"`. The
// annos right after "{" attach directly to the OBJECT node itself — see
// DESIGN.md for why this policy was chosen over the alternatives spec.md
// §9 leaves open.
func (p *Parser) parseObject() {
	p.b.StartNode() // OBJECT
	p.bump()         // '{'
	p.skipTrivia()
	if p.at(syntax.AT) {
		p.parseAnnos()
		p.skipTrivia()
	}

	first := true
	for p.curKind() != syntax.BRACE_END && p.curKind() != syntax.EOF {
		if !first {
			if p.at(syntax.COMMA) {
				p.bump()
				p.skipTrivia()
				if p.curKind() == syntax.BRACE_END {
					break
				}
			} else {
				p.addError(msgExpectComma)
			}
		}

		if p.at(syntax.AT) {
			p.addError(msgUnexpectedAt)
			p.parseAnnos() // discarded: spec.md §9 open question, this module's policy
			p.skipTrivia()
			continue
		}

		before := p.pos
		p.parseEntry()
		if p.pos == before {
			p.bumpAs(syntax.ERROR)
		}
		first = false
		p.skipTrivia()
	}

	if p.curKind() == syntax.BRACE_END {
		p.bump()
	} else {
		p.addError(msgUnexpectedEOF)
	}
	p.b.FinishNode(syntax.OBJECT)
}

func (p *Parser) parseEntry() {
	p.b.StartNode() // ENTRY
	p.parseKey()
	p.skipTrivia()
	if p.at(syntax.COLON) {
		p.bump()
	} else {
		p.addError(msgExpectedColon)
	}
	p.skipTrivia()
	p.parseVwa()
	p.b.FinishNode(syntax.ENTRY)
}

// parseArray parses `"[" annos? ( vwa ("," vwa)* ","? )? "]"`.
func (p *Parser) parseArray() {
	p.b.StartNode() // ARRAY
	p.bump()         // '['
	p.skipTrivia()
	if p.at(syntax.AT) {
		p.parseAnnos()
		p.skipTrivia()
	}

	first := true
	for p.curKind() != syntax.BRACKET_END && p.curKind() != syntax.EOF {
		if !first {
			if p.at(syntax.COMMA) {
				p.bump()
				p.skipTrivia()
				if p.curKind() == syntax.BRACKET_END {
					break
				}
			} else {
				p.addError(msgExpectComma)
			}
		}

		before := p.pos
		p.parseVwa()
		if p.pos == before {
			p.bumpAs(syntax.ERROR)
		}
		first = false
		p.skipTrivia()
	}

	if p.curKind() == syntax.BRACKET_END {
		p.bump()
	} else {
		p.addError(msgUnexpectedEOF)
	}
	p.b.FinishNode(syntax.ARRAY)
}
