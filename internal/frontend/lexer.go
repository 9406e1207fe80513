// This lexer follows the same state-machine shape as a hand-written Pike-
// style scanner (see runtime/schuko-adjacent scanners in the pack), but
// runs synchronously and returns the full token slice instead of emitting
// over a channel: the compiler core is a pure, single-threaded transform
// (spec's concurrency model), so there is no consumer to stream tokens to.
//
// Scanning itself is total and infallible: '(' and ')' are structural,
// whitespace is discarded, and everything else accumulates into a maximal
// run of "other" characters. Multi-character operators like "<<" or "=="
// are never special-cased; they fall out of contiguous non-whitespace runs.
package frontend

import (
	"unicode"
	"unicode/utf8"

	"sxc/internal/token"
)

// stateFunc is the lexer's current scanning state.
type stateFunc func(*lexer) stateFunc

// lexer scans a source string into a slice of tokens.
type lexer struct {
	input string
	start int // start byte offset of the token being accumulated.
	pos   int // current scan position.
	width int // width in bytes of the last rune returned by next.

	tokens []token.Token
}

// Lex splits source into OpenParen, CloseParen and Other tokens, each
// tagged with its first byte's offset. Whitespace is discarded.
func Lex(source string) []token.Token {
	l := &lexer{input: source, tokens: make([]token.Token, 0, len(source)/2+1)}
	for state := lexAny; state != nil; {
		state = state(l)
	}
	return l.tokens
}

const eof = -1

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

// emitOtherUpTo flushes the pending "other" run ending at end (exclusive),
// if non-empty, as a single token, and advances start past it.
func (l *lexer) emitOtherUpTo(end int) {
	if end > l.start {
		l.tokens = append(l.tokens, token.Token{
			Kind: token.Other,
			Text: l.input[l.start:end],
			Pos:  token.Pos(l.start),
		})
	}
	l.start = end
}

// lexAny is the sole lexer state: every rune is either structural
// (paren/whitespace) or extends the current "other" run.
func lexAny(l *lexer) stateFunc {
	r := l.next()
	switch {
	case r == eof:
		l.emitOtherUpTo(l.pos)
		return nil
	case r == '(':
		delim := l.pos - l.width
		l.emitOtherUpTo(delim)
		l.tokens = append(l.tokens, token.Token{Kind: token.OpenParen, Pos: token.Pos(delim)})
		l.start = l.pos
	case r == ')':
		delim := l.pos - l.width
		l.emitOtherUpTo(delim)
		l.tokens = append(l.tokens, token.Token{Kind: token.CloseParen, Pos: token.Pos(delim)})
		l.start = l.pos
	case unicode.IsSpace(r):
		l.emitOtherUpTo(l.pos - l.width)
		l.start = l.pos
	default:
		// Extend (or start) the current "other" run; nothing to emit yet.
	}
	return lexAny
}
