// SPDX-License-Identifier: MIT
package token

import "fmt"

// Position is a 1-based line & column pair; columns count code points.
type Position struct {
	Line   int
	Column int
}

// Locate converts a byte offset in source into a Position.
//
// Offsets past the end of source are clamped to it.
func Locate(source string, offset int) (p Position) {
	if offset > len(source) {
		offset = len(source)
	}

	p.Line, p.Column = 1, 1
	for index, r := range source {
		if index >= offset {
			break
		}

		if r == '\n' {
			p.Line++
			p.Column = 1
			continue
		}
		p.Column++
	}

	return
}

// String formats the Position as `line:column`.
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

