// SPDX-License-Identifier: MIT
package lexer

import (
	"reflect"
	"testing"

	"github.com/MoustaphaDev/simple-lexer/token"
)

func FuzzLex(f *testing.F) {
	for _, seed := range []string{
		"let value = 1;",
		"let value =+ 1;",
		"let value ++++ 1;",
		"let @$`",
		"let value = another_value",
		"let greetings = 'привет мой друг';",
		`let word = "Hello" + " " + "world!"; `,
		"'unterminated",
		"<=>!%*=/-",
		"\xff\xfe'\xff",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		tokens, errs := Lex(source)
		assertCoverage(t, source, tokens)

		againTokens, againErrs := Lex(source)
		if !reflect.DeepEqual(tokens, againTokens) || !reflect.DeepEqual(errs, againErrs) {
			t.Fatalf("Lex(%q) is not deterministic", source)
		}

		for _, e := range errs {
			if e.Span.Start < 0 || e.Span.End() > len(source) {
				t.Fatalf("error %v out of range for %d bytes", e, len(source))
			}
		}

		for _, tk := range tokens {
			if tk.Kind == token.KindOperator && tk.Operator == token.OperatorInvalid {
				t.Fatalf("unresolved operator token %v", tk)
			}
		}
	})
}
