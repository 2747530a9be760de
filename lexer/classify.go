// SPDX-License-Identifier: MIT
package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	operatorSymbols = [utf8.RuneSelf]bool{
		'+': true,
		'-': true,
		'*': true,
		'/': true,
		'=': true,
		'!': true,
		'<': true,
		'>': true,
		'%': true,
	}

	// keywords is the closed keyword set; "mmk" is the project's own alias.
	keywords = map[string]struct{}{
		"let":      {},
		"const":    {},
		"if":       {},
		"else":     {},
		"while":    {},
		"for":      {},
		"function": {},
		"mmk":      {},
	}
)

// Keywords obtains a sorted copy of the keyword set.
func Keywords() []string {
	list := maps.Keys(keywords)
	slices.Sort(list)

	return list
}

// isDigit return true for an ASCII digit.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isLetter return true for an ASCII letter.
func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

// isOperatorSymbol return true for a rune that can be part of an operator.
func isOperatorSymbol(r rune) bool { return r >= 0 && r < utf8.RuneSelf && operatorSymbols[r] }

func isSingleQuote(r rune) bool { return r == '\'' }

func isDoubleQuote(r rune) bool { return r == '"' }

func isSemicolon(r rune) bool { return r == ';' }

// isWhitespace return true for Unicode white space.
func isWhitespace(r rune) bool { return unicode.IsSpace(r) }

// isIdentifierContinuation return true for runes allowed after an identifier's first letter.
func isIdentifierContinuation(r rune) bool { return isLetter(r) || isDigit(r) || r == '_' }

// isKeyword return true for an exact keyword match.
func isKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
