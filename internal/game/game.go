package game

// Board owns the grid of a single game session. It is mutated only through
// DropDisc and never caches whether the game is over.
type Board struct {
	grid Grid
}

func NewBoard() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.grid = Grid{}
}

// DropDisc drops mark into the 1-indexed column. It returns false without
// touching the grid if the column is out of range or already full.
func (b *Board) DropDisc(column int, mark PlayerMark) bool {
	_, ok := b.grid.Drop(column, mark)
	return ok
}

// CheckWin reports whether mark has four in a row anywhere on the board.
func (b *Board) CheckWin(mark PlayerMark) bool {
	return b.grid.HasFourInARow(mark)
}

// IsFull reports whether no column accepts another disc.
func (b *Board) IsFull() bool {
	return b.grid.IsFull()
}

// IsValidMove reports whether a disc can be dropped in column right now.
func (b *Board) IsValidMove(column int) bool {
	return b.grid.IsValidMove(column)
}

// GridSnapshot returns a copy of the grid. Changing it does not affect the board.
func (b *Board) GridSnapshot() Grid {
	return b.grid
}
