package game

// Grid is a 6x7 board. Row 0 is the top row and row Rows-1 the bottom one.
// Grid is a value type: assigning it copies every cell.
type Grid [Rows][Columns]PlayerMark

// directions scanned from every cell: horizontal, vertical,
// diagonal descending and diagonal ascending.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Cell returns the mark at a 0-indexed row and a 1-indexed column.
func (g *Grid) Cell(row, column int) PlayerMark {
	return g[row][column-1]
}

// IsValidMove reports whether column is in range and not full.
func (g *Grid) IsValidMove(column int) bool {
	if column < ColumnMin || column > ColumnMax {
		return false
	}
	return g[0][column-1] == None
}

// Drop places mark in the lowest empty cell of column and returns its row.
func (g *Grid) Drop(column int, mark PlayerMark) (row int, ok bool) {
	if !mark.IsPlayable() || !g.IsValidMove(column) {
		return -1, false
	}
	for r := Rows - 1; r >= 0; r-- {
		if g[r][column-1] == None {
			g[r][column-1] = mark
			return r, true
		}
	}
	return -1, false
}

// ValidColumns lists the columns that still accept a disc, left to right.
func (g *Grid) ValidColumns() []int {
	columns := make([]int, 0, Columns)
	for c := ColumnMin; c <= ColumnMax; c++ {
		if g.IsValidMove(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// IsFull checks the top row only; gravity keeps the cells below it filled.
func (g *Grid) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if g[0][c] == None {
			return false
		}
	}
	return true
}

// HasFourInARow scans every cell in all four directions for ToWin
// consecutive cells holding mark.
func (g *Grid) HasFourInARow(mark PlayerMark) bool {
	if !mark.IsPlayable() {
		return false
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if g[r][c] != mark {
				continue
			}
			for _, d := range directions {
				if g.lineFrom(r, c, d[0], d[1], mark) {
					return true
				}
			}
		}
	}
	return false
}

func (g *Grid) lineFrom(row, col, dRow, dCol int, mark PlayerMark) bool {
	for i := 0; i < ToWin; i++ {
		r, c := row+dRow*i, col+dCol*i
		if r < 0 || r >= Rows || c < 0 || c >= Columns || g[r][c] != mark {
			return false
		}
	}
	return true
}
