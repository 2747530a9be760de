// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/MoustaphaDev/simple-lexer/token"
)

type (
	// stateID enumerates the scanner states.
	stateID int

	// state is the scanner state; quote is only set for stateString.
	state struct {
		id    stateID
		quote token.StringKind
	}

	// Lexer converts a source string into span-tagged tokens in a single pass.
	//
	// A Lexer is created per source & is not safe for concurrent use.
	Lexer struct {
		cfg *Config

		source string

		// cursor is the index of the current code point.
		cursor int
		// offset is the byte offset of the current code point.
		//
		// Spans are computed from offset, never from cursor.
		offset int

		current state
		// tokenStart is the byte offset of the buffered token's first byte.
		tokenStart int

		tokens []token.Token
		errors Errors

		done bool
	}
)

const (
	stateStart stateID = iota
	stateNumber
	stateIdentifier
	stateOperator
	stateString
)

// maxOperatorLength is the byte length of the longest operator.
const maxOperatorLength = 2

var stateNames = [...]string{
	stateStart:      "Start",
	stateNumber:     "InNumber",
	stateIdentifier: "InIdentifier",
	stateOperator:   "InOperator",
	stateString:     "InString",
}

func (s state) String() string {
	if s.id == stateString {
		return fmt.Sprintf("%s(%s)", stateNames[s.id], s.quote)
	}
	return stateNames[s.id]
}

// New creates a Lexer for the source.
func New(source string, opts ...Option) *Lexer {
	return &Lexer{
		cfg:    newConfig(opts),
		source: source,
		tokens: make([]token.Token, 0, len(source)/2+1),
	}
}

// Lex lexes a source in one pass.
func Lex(source string, opts ...Option) ([]token.Token, Errors) { return New(source, opts...).Lex() }

// Config retrieves the Lexer's Config.
func (l *Lexer) Config() *Config { return l.cfg }

// Source retrieves the Lexer's input.
func (l *Lexer) Source() string { return l.source }

// Lex scans the whole source, returning the tokens & diagnostics in source order.
//
// The source is scanned once; subsequent calls return the first pass' results.
func (l *Lexer) Lex() ([]token.Token, Errors) {
	if l.done {
		return l.tokens, l.errors
	}

	for l.offset < len(l.source) {
		r, width := utf8.DecodeRuneInString(l.source[l.offset:])

		// Handlers that change state without consuming get the rune again under the new state.
		if l.handle(r, width) {
			l.offset += width
			l.cursor++
		}
	}

	// Flush the buffered token, an operator split may need more than one pass.
	for l.current.id != stateStart {
		l.finalize(len(l.source))
	}

	l.done = true
	if l.cfg.Debug {
		l.cfg.Logger.WithFields(logrus.Fields{
			"tokens":     len(l.tokens),
			"errors":     len(l.errors),
			"bytes":      len(l.source),
			"codePoints": l.cursor,
		}).Debug("lexer done")
	}

	return l.tokens, l.errors
}

// handle dispatches the rune to the handler for the current state.
//
// Returns true if the rune was consumed.
func (l *Lexer) handle(r rune, width int) bool {
	switch l.current.id {
	case stateNumber:
		return l.lexNumber(r)
	case stateIdentifier:
		return l.lexIdentifier(r)
	case stateOperator:
		return l.lexOperator(r)
	case stateString:
		return l.lexString(r)
	default:
		return l.lexStart(r, width)
	}
}

func (l *Lexer) lexStart(r rune, width int) bool {
	l.tokenStart = l.offset

	switch {
	case isDigit(r):
		l.current = state{id: stateNumber}
		return false
	case isLetter(r):
		l.current = state{id: stateIdentifier}
		return false
	case isSingleQuote(r):
		// The opening quote is not part of the token.
		l.tokenStart += width
		l.current = state{id: stateString, quote: token.SingleQuoted}
	case isDoubleQuote(r):
		l.tokenStart += width
		l.current = state{id: stateString, quote: token.DoubleQuoted}
	case isOperatorSymbol(r):
		l.current = state{id: stateOperator}
		return false
	case isSemicolon(r):
		l.emit(token.New(token.KindSemicolon, l.offset, width))
	case isWhitespace(r):
		l.emit(token.New(token.KindWhitespace, l.offset, width))
	default:
		span := token.Span{Start: l.offset, Length: width}
		l.emit(token.Token{Kind: token.KindInvalid, Span: span})
		l.report(span, InvalidToken)
	}

	return true
}

func (l *Lexer) lexNumber(r rune) bool {
	if isDigit(r) {
		return true
	}

	l.finalize(l.offset)
	return false
}

func (l *Lexer) lexIdentifier(r rune) bool {
	if isIdentifierContinuation(r) {
		return true
	}

	l.finalize(l.offset)
	return false
}

func (l *Lexer) lexOperator(r rune) bool {
	// Operator symbols are ASCII, the byte count is the rune count.
	if isOperatorSymbol(r) && l.offset-l.tokenStart < maxOperatorLength {
		return true
	}

	l.finalize(l.offset)
	return false
}

func (l *Lexer) lexString(r rune) bool {
	if r == l.current.quote.Delimiter() {
		// The closing quote is consumed but not part of the token.
		l.emit(token.NewString(l.current.quote, l.tokenStart, l.offset-l.tokenStart))
		l.current = state{id: stateStart}
	}

	return true
}

// finalize converts the buffered slice [tokenStart, end) into a token.
func (l *Lexer) finalize(end int) {
	length := end - l.tokenStart

	switch l.current.id {
	case stateNumber:
		l.emit(token.New(token.KindNumber, l.tokenStart, length))
	case stateIdentifier:
		kind := token.KindIdentifier
		if isKeyword(l.source[l.tokenStart:end]) {
			kind = token.KindKeyword
		}
		l.emit(token.New(kind, l.tokenStart, length))
	case stateOperator:
		if !l.finalizeOperator(end) {
			// Restart from the run's second character.
			return
		}
	case stateString:
		// Only reachable at the end of input.
		l.emit(token.NewString(l.current.quote, l.tokenStart, length))
		l.report(token.Span{Start: l.tokenStart - 1, Length: length + 1}, UnterminatedString)
	default:
		if l.cfg.Debug {
			l.cfg.Logger.Debugf("lexer state: %s\ntokens: %s", spew.Sdump(l.current), spew.Sdump(l.tokens))
		}
		panic(fmt.Sprintf("lexer: finalize called in the %s state at byte %d", l.current, end))
	}

	l.current = state{id: stateStart}
}

// finalizeOperator emits the buffered operator run.
//
// An unresolved 2 character run emits its first character & stays in stateOperator with the second
// character buffered; false is returned in that case.
func (l *Lexer) finalizeOperator(end int) bool {
	slice := l.source[l.tokenStart:end]
	if op := token.LookupOperator(slice); op != token.OperatorInvalid {
		l.emit(token.NewOperator(op, l.tokenStart, len(slice)))
		return true
	}

	l.report(token.Span{Start: l.tokenStart, Length: len(slice)}, InvalidOperator)
	l.emit(token.NewOperator(token.LookupOperator(slice[:1]), l.tokenStart, 1))
	l.tokenStart++

	return false
}

// emit appends a token to the output.
func (l *Lexer) emit(t token.Token) {
	if l.cfg.Debug {
		l.cfg.Logger.WithFields(logrus.Fields{
			"token":  t,
			"start":  t.Span.Start,
			"length": t.Span.Length,
			"lexeme": t.Lexeme(l.source),
		}).Debug("lexer emit")
	}

	l.tokens = append(l.tokens, t)
}

// report appends a diagnostic to the output.
func (l *Lexer) report(span token.Span, kind ErrorKind) {
	if l.cfg.Debug {
		l.cfg.Logger.WithFields(logrus.Fields{
			"kind":   kind,
			"start":  span.Start,
			"length": span.Length,
		}).Debug("lexer error")
	}

	l.errors = append(l.errors, Error{Span: span, Kind: kind})
}
