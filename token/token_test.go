// SPDX-License-Identifier: MIT
package token

import (
	"testing"
)

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		slice string
		want  OperatorKind
	}{
		{"+", Add},
		{"-", Subtract},
		{"*", Multiply},
		{"/", Divide},
		{"%", Modulo},
		{"=", Equal},
		{"!", Not},
		{">", GreaterThan},
		{"<", LessThan},
		{"+=", CompoundAdd},
		{"-=", CompoundSubtract},
		{"*=", CompoundMultiply},
		{"/=", CompoundDivide},
		{"%=", CompoundModulo},
		{"++", Increment},
		{"--", Decrement},
		{"==", DoubleEqual},
		{"!=", NotEqual},

		{"=+", OperatorInvalid},
		{"<=", OperatorInvalid},
		{">>", OperatorInvalid},
		{"**", OperatorInvalid},
		{"!!", OperatorInvalid},
		{"+++", OperatorInvalid},
		{"", OperatorInvalid},
		{"a", OperatorInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.slice, func(t *testing.T) {
			if got := LookupOperator(tt.slice); got != tt.want {
				t.Errorf("LookupOperator(%q) = %v, want %v", tt.slice, got, tt.want)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{"keyword", New(KindKeyword, 0, 3), "Keyword(0,3)"},
		{"operator", NewOperator(Equal, 10, 1), "Operator(Equal)(10,1)"},
		{"string", NewString(DoubleQuoted, 12, 5), "String(DoubleQuoted)(12,5)"},
		{"unknown kind", New(Kind(42), 1, 1), "Kind(42)(1,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.want {
				t.Errorf("Token.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_Slice(t *testing.T) {
	src := "let s = 'привет';"

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"ascii", Span{0, 3}, "let"},
		{"multi-byte", Span{9, 12}, "привет"},
		{"empty", Span{9, 0}, ""},
		{"clamped end", Span{21, 100}, "';"},
		{"past end", Span{200, 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Slice(src); got != tt.want {
				t.Errorf("Span.Slice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	src := "let a = 1;\nlet б = 'x';"

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start", 0, Position{1, 1}},
		{"first line", 4, Position{1, 5}},
		{"newline", 10, Position{1, 11}},
		{"second line", 11, Position{2, 1}},
		// `б` is 2 bytes wide; the following space is on column 6.
		{"after multi-byte", 17, Position{2, 6}},
		{"clamped", 1000, Position{2, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Locate(src, tt.offset); got != tt.want {
				t.Errorf("Locate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringKind_Delimiter(t *testing.T) {
	if got := SingleQuoted.Delimiter(); got != '\'' {
		t.Errorf("SingleQuoted.Delimiter() = %q", got)
	}
	if got := DoubleQuoted.Delimiter(); got != '"' {
		t.Errorf("DoubleQuoted.Delimiter() = %q", got)
	}
}
