package game

import "math/rand/v2"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// Board dimensions
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// Columns are numbered from 1 for players.
	ColumnMin = 1
	ColumnMax = Columns
)

// IsPlayable reports whether m is a mark a player can drop.
func (m PlayerMark) IsPlayable() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other playing mark. None has no opponent.
func Opponent(m PlayerMark) PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// RandomlyChooseFirstPlayer flips a coin with r to decide who moves first.
func RandomlyChooseFirstPlayer(r *rand.Rand) PlayerMark {
	if r.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}
