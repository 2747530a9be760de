// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"

	"github.com/MoustaphaDev/simple-lexer/token"
)

type (
	// ErrorKind identifies the class of a lexing diagnostic.
	ErrorKind int

	// Error is a recoverable lexing diagnostic.
	Error struct {
		Span token.Span
		Kind ErrorKind
	}

	// Errors is the ordered list of diagnostics produced by a pass.
	Errors []Error
)

const (
	// InvalidToken marks a character matching no character class.
	InvalidToken ErrorKind = iota
	// InvalidOperator marks a 2 character operator run with no meaning.
	InvalidOperator
	// UnterminatedString marks a string literal reaching the end of input.
	UnterminatedString
)

// Lexing errors.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnknownKind        = errors.New("unknown lexing error")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case InvalidOperator:
		return "InvalidOperator"
	case UnterminatedString:
		return "UnterminatedString"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error implements the `error` interface.
func (e Error) Error() string { return fmt.Sprintf("%v at %s", e.Unwrap(), e.Span) }

// Unwrap obtains the sentinel error for the Error's kind.
func (e Error) Unwrap() error {
	switch e.Kind {
	case InvalidToken:
		return ErrInvalidToken
	case InvalidOperator:
		return ErrInvalidOperator
	case UnterminatedString:
		return ErrUnterminatedString
	default:
		return ErrUnknownKind
	}
}

// Format renders the Error as `line:column: message: lexeme` against its source.
func (e Error) Format(source string) string {
	return fmt.Sprintf("%s: %v: %q", token.Locate(source, e.Span.Start), e.Unwrap(), e.Span.Slice(source))
}

// Err folds the list into a single error; nil when empty.
func (es Errors) Err() error {
	if len(es) < 1 {
		return nil
	}

	list := make([]error, len(es))
	for index := range es {
		list[index] = es[index]
	}

	return errors.Join(list...)
}
