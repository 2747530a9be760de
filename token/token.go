// SPDX-License-Identifier: MIT

// Package token defines the lexical units produced by the lexer & the byte spans locating them in
// the source.
package token

import "fmt"

type (
	// Kind identifies the class of a Token.
	Kind int

	// StringKind records the delimiter that opened a string literal.
	StringKind int

	// OperatorKind identifies a resolved operator.
	OperatorKind int

	// Span locates a lexeme in the source, in bytes.
	Span struct {
		Start  int // Byte offset of the first byte.
		Length int // Byte count.
	}

	// Token is a classified Span of the source.
	//
	// Quote & Operator are only meaningful for KindString & KindOperator respectively.
	Token struct {
		Kind     Kind
		Quote    StringKind
		Operator OperatorKind
		Span     Span
	}
)

const (
	KindInvalid Kind = iota
	KindNumber
	KindIdentifier
	KindKeyword
	KindWhitespace
	KindSemicolon
	KindString
	KindOperator
)

const (
	SingleQuoted StringKind = iota
	DoubleQuoted
)

const (
	// OperatorInvalid is returned for slices that don't spell an operator.
	OperatorInvalid OperatorKind = iota

	Add      // +
	Subtract // -
	Multiply // *
	Divide   // /
	Modulo   // %

	CompoundAdd      // +=
	CompoundSubtract // -=
	CompoundMultiply // *=
	CompoundDivide   // /=
	CompoundModulo   // %=

	Increment // ++
	Decrement // --

	Equal       // =
	DoubleEqual // ==
	NotEqual    // !=
	Not         // !
	GreaterThan // >
	LessThan    // <
)

var (
	kindNames = [...]string{
		KindInvalid:    "Invalid",
		KindNumber:     "Number",
		KindIdentifier: "Identifier",
		KindKeyword:    "Keyword",
		KindWhitespace: "Whitespace",
		KindSemicolon:  "Semicolon",
		KindString:     "String",
		KindOperator:   "Operator",
	}

	operatorNames = [...]string{
		OperatorInvalid:  "Invalid",
		Add:              "Add",
		Subtract:         "Subtract",
		Multiply:         "Multiply",
		Divide:           "Divide",
		Modulo:           "Modulo",
		CompoundAdd:      "CompoundAdd",
		CompoundSubtract: "CompoundSubtract",
		CompoundMultiply: "CompoundMultiply",
		CompoundDivide:   "CompoundDivide",
		CompoundModulo:   "CompoundModulo",
		Increment:        "Increment",
		Decrement:        "Decrement",
		Equal:            "Equal",
		DoubleEqual:      "DoubleEqual",
		NotEqual:         "NotEqual",
		Not:              "Not",
		GreaterThan:      "GreaterThan",
		LessThan:         "LessThan",
	}
)

// New creates a Token of the given kind.
func New(kind Kind, start, length int) Token {
	return Token{Kind: kind, Span: Span{Start: start, Length: length}}
}

// NewString creates a KindString Token.
func NewString(sk StringKind, start, length int) Token {
	return Token{Kind: KindString, Quote: sk, Span: Span{Start: start, Length: length}}
}

// NewOperator creates a KindOperator Token.
func NewOperator(op OperatorKind, start, length int) Token {
	return Token{Kind: KindOperator, Operator: op, Span: Span{Start: start, Length: length}}
}

// End obtains the byte offset following the Span.
func (s Span) End() int { return s.Start + s.Length }

// Slice obtains the lexeme the Span denotes in source.
//
// Out of range spans are clamped to the source.
func (s Span) Slice(source string) string {
	start, end := s.Start, s.End()
	if start > len(source) {
		start = len(source)
	}
	if end > len(source) {
		end = len(source)
	}
	if start < 0 || end < start {
		return ""
	}

	return source[start:end]
}

// String formats the Span as `(start,length)`.
func (s Span) String() string { return fmt.Sprintf("(%d,%d)", s.Start, s.Length) }

// Lexeme obtains the Token's text in source.
func (t Token) Lexeme(source string) string { return t.Span.Slice(source) }

// String formats the Token as `Kind(payload)(start,length)`.
func (t Token) String() string {
	switch t.Kind {
	case KindString:
		return fmt.Sprintf("String(%s)%s", t.Quote, t.Span)
	case KindOperator:
		return fmt.Sprintf("Operator(%s)%s", t.Operator, t.Span)
	default:
		return t.Kind.String() + t.Span.String()
	}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (sk StringKind) String() string {
	switch sk {
	case SingleQuoted:
		return "SingleQuoted"
	case DoubleQuoted:
		return "DoubleQuoted"
	default:
		return fmt.Sprintf("StringKind(%d)", int(sk))
	}
}

// Delimiter obtains the quote rune opening & closing the literal.
func (sk StringKind) Delimiter() rune {
	if sk == DoubleQuoted {
		return '"'
	}
	return '\''
}

func (op OperatorKind) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return fmt.Sprintf("OperatorKind(%d)", int(op))
	}
	return operatorNames[op]
}
