package bot

import (
	"math"
	"math/rand/v2"

	"github.com/Taniish2545/ConnectFour/internal/game"
)

// Difficulty levels understood by CalculateNextMove.
const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

const (
	searchDepth = 5
	winScore    = 1000000
)

// centerFirst is the column order tried by the search; central columns
// take part in more lines so they are explored first.
var centerFirst = [game.Columns]int{4, 3, 5, 2, 6, 1, 7}

// MoveCalculator picks a column for the automated seat.
type MoveCalculator struct {
	rand *rand.Rand
}

// NewMoveCalculator creates a calculator drawing random choices from r.
func NewMoveCalculator(r *rand.Rand) *MoveCalculator {
	return &MoveCalculator{rand: r}
}

// CalculateNextMove determines the bot's next column based on the specified
// difficulty. It returns -1 when the grid has no valid column.
func (c *MoveCalculator) CalculateNextMove(grid game.Grid, mark game.PlayerMark, difficulty string) int {
	switch difficulty {
	case Easy:
		return c.easyMove(grid)
	case Medium:
		return c.mediumMove(grid, mark)
	case Hard:
		return c.hardMove(grid, mark)
	default:
		return c.hardMove(grid, mark)
	}
}

// easyMove picks any valid column at random.
func (c *MoveCalculator) easyMove(grid game.Grid) int {
	columns := grid.ValidColumns()
	if len(columns) == 0 {
		return -1
	}
	return columns[c.rand.IntN(len(columns))]
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func (c *MoveCalculator) mediumMove(grid game.Grid, mark game.PlayerMark) int {
	// 1. Win
	if column, ok := findWinningMove(grid, mark); ok {
		return column
	}

	// 2. Block
	if column, ok := findWinningMove(grid, game.Opponent(mark)); ok {
		return column
	}

	// 3. Random
	return c.easyMove(grid)
}

// hardMove wins or blocks like mediumMove and otherwise searches ahead.
func (c *MoveCalculator) hardMove(grid game.Grid, mark game.PlayerMark) int {
	if column, ok := findWinningMove(grid, mark); ok {
		return column
	}
	if column, ok := findWinningMove(grid, game.Opponent(mark)); ok {
		return column
	}
	return bestMinimaxMove(grid, mark, searchDepth)
}

// findWinningMove returns a column where dropping mark completes four in a row.
func findWinningMove(grid game.Grid, mark game.PlayerMark) (int, bool) {
	for _, column := range grid.ValidColumns() {
		next := grid
		if _, ok := next.Drop(column, mark); !ok {
			continue
		}
		if next.HasFourInARow(mark) {
			return column, true
		}
	}
	return -1, false
}

func bestMinimaxMove(grid game.Grid, mark game.PlayerMark, depth int) int {
	best := -1
	bestScore := math.MinInt
	alpha, beta := math.MinInt/2, math.MaxInt/2
	for _, column := range centerFirst {
		next := grid
		if _, ok := next.Drop(column, mark); !ok {
			continue
		}
		score := minimax(next, depth-1, alpha, beta, false, mark)
		if score > bestScore {
			bestScore = score
			best = column
		}
		alpha = max(alpha, bestScore)
	}
	return best
}

// minimax scores grid from me's point of view with alpha-beta pruning.
// Wins found with more depth left score higher, so faster wins are preferred
// and losses are pushed back as far as possible.
func minimax(grid game.Grid, depth, alpha, beta int, maximizing bool, me game.PlayerMark) int {
	opp := game.Opponent(me)
	switch {
	case grid.HasFourInARow(me):
		return winScore + depth
	case grid.HasFourInARow(opp):
		return -winScore - depth
	case grid.IsFull():
		return 0
	case depth == 0:
		return evaluate(grid, me)
	}

	if maximizing {
		maxEval := math.MinInt
		for _, column := range centerFirst {
			next := grid
			if _, ok := next.Drop(column, me); !ok {
				continue
			}
			maxEval = max(maxEval, minimax(next, depth-1, alpha, beta, false, me))
			alpha = max(alpha, maxEval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, column := range centerFirst {
		next := grid
		if _, ok := next.Drop(column, opp); !ok {
			continue
		}
		minEval = min(minEval, minimax(next, depth-1, alpha, beta, true, me))
		beta = min(beta, minEval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}

// evaluate is a static score of every 4-cell window plus a center bonus.
func evaluate(grid game.Grid, me game.PlayerMark) int {
	score := 0
	center := game.Columns / 2
	for r := 0; r < game.Rows; r++ {
		if grid[r][center] == me {
			score += 6
		}
	}

	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Columns; c++ {
			for _, d := range [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}} {
				endRow, endCol := r+d[0]*(game.ToWin-1), c+d[1]*(game.ToWin-1)
				if endRow < 0 || endRow >= game.Rows || endCol >= game.Columns {
					continue
				}
				var window [game.ToWin]game.PlayerMark
				for i := range window {
					window[i] = grid[r+d[0]*i][c+d[1]*i]
				}
				score += scoreWindow(window, me)
			}
		}
	}
	return score
}

func scoreWindow(window [game.ToWin]game.PlayerMark, me game.PlayerMark) int {
	opp := game.Opponent(me)
	mine, theirs, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case me:
			mine++
		case opp:
			theirs++
		default:
			empty++
		}
	}

	switch {
	case mine == 3 && empty == 1:
		return 100
	case mine == 2 && empty == 2:
		return 10
	case theirs == 3 && empty == 1:
		return -120
	case theirs == 2 && empty == 2:
		return -12
	}
	return 0
}
