package api

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/red-alert/models/battleship"
)

// writeBoard prints the board with column indexes on top and row indexes on
// the left. Glyphs are two columns wide in a terminal.
func (rp *RequestProcessor) writeBoard(title string, board *mb.Board, revealBoats bool) {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n   ")
	for x := 0; x < board.Width(); x++ {
		fmt.Fprintf(&sb, "%-2d", x%100)
	}
	sb.WriteByte('\n')

	rows := strings.Split(strings.TrimSuffix(board.Render(revealBoats), "\n"), "\n")
	for y, row := range rows {
		fmt.Fprintf(&sb, "%2d %s\n", y, row)
	}

	rp.printf("%s", sb.String())
}
