// SPDX-License-Identifier: MIT
package token

// operators maps every defined operator spelling to its kind.
var operators = map[string]OperatorKind{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"/": Divide,
	"%": Modulo,
	"=": Equal,

	"!": Not,
	">": GreaterThan,
	"<": LessThan,

	"+=": CompoundAdd,
	"-=": CompoundSubtract,
	"*=": CompoundMultiply,
	"/=": CompoundDivide,
	"%=": CompoundModulo,

	"++": Increment,
	"--": Decrement,

	"==": DoubleEqual,
	"!=": NotEqual,
}

// LookupOperator resolves a 1 or 2 byte operator slice.
//
// OperatorInvalid is returned for any other slice.
func LookupOperator(slice string) OperatorKind {
	if op, ok := operators[slice]; ok {
		return op
	}

	return OperatorInvalid
}
