package tui

import (
	"strings"

	"termchess/chess"
)

// RenderBoard renders a board snapshot in a fixed-width grid, rank 8 at
// the top, with file and rank labels. Pieces print as FEN letters.
func RenderBoard(squares [64]chess.Piece) string {
	var b strings.Builder
	b.WriteString("    a b c d e f g h\n")
	b.WriteString("  +-----------------+\n")

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		b.WriteString(" | ")
		for file := 0; file < 8; file++ {
			b.WriteString(squares[chess.SquareOf(file, rank)].String())
			b.WriteByte(' ')
		}
		b.WriteString("| ")
		b.WriteByte('1' + byte(rank))
		b.WriteByte('\n')
	}

	b.WriteString("  +-----------------+\n")
	b.WriteString("    a b c d e f g h")
	return b.String()
}
