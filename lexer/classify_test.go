// SPDX-License-Identifier: MIT
package lexer

import "testing"

func TestClassifiers(t *testing.T) {
	type predicate struct {
		name string
		fn   func(rune) bool
	}

	tests := []struct {
		pred predicate
		yes  string
		no   string
	}{
		{predicate{"isDigit", isDigit}, "0123456789", "a_ \u0663+"},
		{predicate{"isLetter", isLetter}, "azAZ", "0_\u00e9 ;"},
		{predicate{"isOperatorSymbol", isOperatorSymbol}, "+-*/=!<>%", "&|^;'a"},
		{predicate{"isSingleQuote", isSingleQuote}, "'", "\"`"},
		{predicate{"isDoubleQuote", isDoubleQuote}, "\"", "'`"},
		{predicate{"isSemicolon", isSemicolon}, ";", ":,"},
		{predicate{"isWhitespace", isWhitespace}, " \t\r\n\u00a0\u3000", "a;_"},
		{predicate{"isIdentifierContinuation", isIdentifierContinuation}, "azAZ09_", "- \u00e9$"},
	}

	for _, tt := range tests {
		t.Run(tt.pred.name, func(t *testing.T) {
			for _, r := range tt.yes {
				if !tt.pred.fn(r) {
					t.Errorf("%s(%q) = false, want true", tt.pred.name, r)
				}
			}
			for _, r := range tt.no {
				if tt.pred.fn(r) {
					t.Errorf("%s(%q) = true, want false", tt.pred.name, r)
				}
			}
		})
	}
}

func Test_isKeyword(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"let", true},
		{"const", true},
		{"function", true},
		{"mmk", true},
		{"LET", false},
		{"let ", false},
		{"", false},
		{"fn", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := isKeyword(tt.text); got != tt.want {
				t.Errorf("isKeyword(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
