package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Taniish2545/ConnectFour/internal/game"
)

const emptyCell = "."

// Renderer draws the board and game messages on the console.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// ShowBoard prints the grid top row first, followed by the column numbers.
func (r *Renderer) ShowBoard(grid game.Grid) {
	fmt.Fprint(r.out, FormatBoard(grid))
}

func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.out, msg)
}

// FormatBoard renders grid as text, one line per row plus a footer.
func FormatBoard(grid game.Grid) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < game.Rows; row++ {
		sb.WriteString("|")
		for column := game.ColumnMin; column <= game.ColumnMax; column++ {
			cell := string(grid.Cell(row, column))
			if cell == "" {
				cell = emptyCell
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n")
	}
	for column := game.ColumnMin; column <= game.ColumnMax; column++ {
		fmt.Fprintf(&sb, "  %d ", column)
	}
	sb.WriteString("\n")
	return sb.String()
}
