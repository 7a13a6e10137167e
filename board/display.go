package board

import (
	"fmt"
	"strings"

	"goban/geom"
)

// ToDisplayText renders the board for diagnostics. Rows are labeled
// 1..dim top to bottom, columns lettered A.. (skipping I) left to right.
// Purely cosmetic; not part of the functional contract.
func (b *Board) ToDisplayText() string {
	var str string
	row := "   "
	for x := 0; x < b.dim; x++ {
		row = row + fmt.Sprintf("%c", geom.ColumnLetter(x)) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", b.dim*2) + "\n"
	for y := 0; y < b.dim; y++ {
		row := fmt.Sprintf("%2d|", y+1)
		for x := 0; x < b.dim; x++ {
			row = row + b.positions[geom.ToIndex(b.dim, x, y)].color.Glyph() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", b.dim*2) + "\n"
	return "\n" + str
}
