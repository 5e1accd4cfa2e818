package entity

import "strings"

// Render returns a human-readable dump of the board for diagnostics, rows 10
// down to 1. Each board row spans two text lines to show the half-step offset
// between hex columns; empty points render as ".".
func (that *Game) Render() string {
	var builder strings.Builder

	for y := MaxRow; y >= MinRow; y-- {
		rowLength, err := RowLength(RowNumber(y))
		if err != nil {
			continue
		}

		indent := string(rune('a'+y-1)) + strings.Repeat(" ", (19-rowLength)/2)
		top := indent
		bottom := indent

		for x := 1; x <= rowLength; x++ {
			dot := "."
			if color, ok := that.board.Occupant(Coordinate{Row: y, Col: x}); ok {
				dot = string(color)
			}

			if (y >= 6 && x%2 == 0) || (y <= 5 && x%2 == 1) {
				top += dot
				bottom += " "
			} else {
				bottom += dot
				top += " "
			}
		}

		builder.WriteString(top)
		builder.WriteByte('\n')
		builder.WriteString(bottom)
		builder.WriteByte('\n')
	}

	return builder.String()
}
