package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board by dropping discs column by column, bottom row first,
// so every fixture respects gravity. Rows are listed top to bottom, '.' is empty.
func boardFrom(t *testing.T, rows [Rows]string) *Board {
	t.Helper()
	b := NewBoard()
	for c := 0; c < Columns; c++ {
		for r := Rows - 1; r >= 0; r-- {
			switch rows[r][c] {
			case 'X':
				require.True(t, b.DropDisc(c+1, PlayerX), "fixture drop at row %d col %d", r, c+1)
			case 'O':
				require.True(t, b.DropDisc(c+1, PlayerO), "fixture drop at row %d col %d", r, c+1)
			}
		}
	}
	return b
}

func TestDropDisc_OutOfRange(t *testing.T) {
	for _, column := range []int{-1, 0, 8, 42} {
		b := NewBoard()
		before := b.GridSnapshot()
		if b.DropDisc(column, PlayerX) {
			t.Errorf("DropDisc(%d) got = true, want false", column)
		}
		assert.Equal(t, before, b.GridSnapshot(), "grid changed after rejected drop in column %d", column)
	}
}

func TestDropDisc_FullColumn(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		require.True(t, b.DropDisc(3, PlayerX))
	}
	before := b.GridSnapshot()

	assert.False(t, b.DropDisc(3, PlayerO))
	assert.False(t, b.IsValidMove(3))
	assert.Equal(t, before, b.GridSnapshot())
}

func TestDropDisc_Gravity(t *testing.T) {
	b := NewBoard()
	require.True(t, b.DropDisc(4, PlayerX))
	require.True(t, b.DropDisc(4, PlayerO))

	g := b.GridSnapshot()
	assert.Equal(t, PlayerX, g.Cell(Rows-1, 4), "first disc lands on the bottom row")
	assert.Equal(t, PlayerO, g.Cell(Rows-2, 4), "second disc stacks directly above")
	assert.Equal(t, None, g.Cell(Rows-3, 4))
}

func TestDropDisc_RejectsEmptyMark(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.DropDisc(1, None))
	assert.Equal(t, Grid{}, b.GridSnapshot())
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name string
		rows [Rows]string
		mark PlayerMark
		want bool
	}{
		{
			name: "Empty board",
			rows: [Rows]string{".......", ".......", ".......", ".......", ".......", "......."},
			mark: PlayerX,
			want: false,
		},
		{
			name: "Horizontal on bottom row",
			rows: [Rows]string{".......", ".......", ".......", ".......", ".......", "XXXX..."},
			mark: PlayerX,
			want: true,
		},
		{
			name: "Horizontal touching right edge",
			rows: [Rows]string{".......", ".......", ".......", ".......", "...OOOO", "...XXXO"},
			mark: PlayerO,
			want: true,
		},
		{
			name: "Vertical in column 4",
			rows: [Rows]string{".......", ".......", "...X...", "...X...", "...X...", "...X..."},
			mark: PlayerX,
			want: true,
		},
		{
			name: "Vertical reaching the top row",
			rows: [Rows]string{"O......", "O......", "O......", "O......", "X......", "X......"},
			mark: PlayerO,
			want: true,
		},
		{
			name: "Diagonal ascending from bottom-left corner",
			rows: [Rows]string{".......", ".......", "...X...", "..XO...", ".XOO...", "XOOX..."},
			mark: PlayerX,
			want: true,
		},
		{
			name: "Diagonal ascending into top-right corner",
			rows: [Rows]string{"......X", ".....XO", "....XOO", "...XOOX", "...OXXO", "...XOOX"},
			mark: PlayerX,
			want: true,
		},
		{
			name: "Diagonal descending from top-left corner",
			rows: [Rows]string{"O......", "XO.....", "XXO....", "OXXO...", "XOOX...", "OXXO..."},
			mark: PlayerO,
			want: true,
		},
		{
			name: "Diagonal descending into bottom-right corner",
			rows: [Rows]string{".......", ".......", "...X...", "...OX..", "...OOX.", "...OOXX"},
			mark: PlayerX,
			want: true,
		},
		{
			name: "Three in a row is not a win",
			rows: [Rows]string{".......", ".......", ".......", ".......", ".......", "XXX...."},
			mark: PlayerX,
			want: false,
		},
		{
			name: "Four non-contiguous is not a win",
			rows: [Rows]string{".......", ".......", ".......", ".......", ".......", "XX.XX.."},
			mark: PlayerX,
			want: false,
		},
		{
			name: "Other mark's four does not count",
			rows: [Rows]string{".......", ".......", ".......", ".......", "XXX....", "OOOO..."},
			mark: PlayerX,
			want: false,
		},
		{
			name: "Empty mark never wins",
			rows: [Rows]string{".......", ".......", ".......", ".......", ".......", "......."},
			mark: None,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.rows)
			if got := b.CheckWin(tt.mark); got != tt.want {
				t.Errorf("CheckWin(%q) got = %v, want %v", tt.mark, got, tt.want)
			}
		})
	}
}

func TestCheckWin_VerticalScenario(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 3; i++ {
		require.True(t, b.DropDisc(4, PlayerX))
		assert.False(t, b.CheckWin(PlayerX), "no win after %d discs", i+1)
	}
	require.True(t, b.DropDisc(4, PlayerX))
	assert.True(t, b.CheckWin(PlayerX))
	assert.False(t, b.CheckWin(PlayerO))
}

func TestCheckWin_DiagonalAscendingScenario(t *testing.T) {
	// X at (row5,col1), (row4,col2), (row3,col3), (row2,col4) with O filler underneath.
	b := NewBoard()
	moves := []struct {
		column int
		mark   PlayerMark
	}{
		{1, PlayerX},
		{2, PlayerO}, {2, PlayerX},
		{3, PlayerO}, {3, PlayerO}, {3, PlayerX},
		{4, PlayerO}, {4, PlayerO}, {4, PlayerO},
	}
	for _, m := range moves {
		require.True(t, b.DropDisc(m.column, m.mark))
	}
	require.False(t, b.CheckWin(PlayerX))

	require.True(t, b.DropDisc(4, PlayerX))
	g := b.GridSnapshot()
	assert.Equal(t, PlayerX, g.Cell(2, 4))
	assert.True(t, b.CheckWin(PlayerX))
}

func TestIsFull(t *testing.T) {
	tie := [Rows]string{
		"XOXOXOX",
		"XOXOXOX",
		"XOXOXOX",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
	}

	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, NewBoard().IsFull())
	})

	t.Run("Tie board is full with no winner", func(t *testing.T) {
		b := boardFrom(t, tie)
		assert.True(t, b.IsFull())
		assert.False(t, b.CheckWin(PlayerX))
		assert.False(t, b.CheckWin(PlayerO))
		g := b.GridSnapshot()
		assert.Empty(t, g.ValidColumns())
	})

	for c := 0; c < Columns; c++ {
		rows := tie
		rows[0] = rows[0][:c] + "." + rows[0][c+1:]
		b := boardFrom(t, rows)
		if b.IsFull() {
			t.Errorf("IsFull() with column %d open got = true, want false", c+1)
		}
		if !b.IsValidMove(c + 1) {
			t.Errorf("IsValidMove(%d) got = false, want true", c+1)
		}
	}
}

func TestReset(t *testing.T) {
	b := NewBoard()
	require.True(t, b.DropDisc(1, PlayerX))
	require.True(t, b.DropDisc(7, PlayerO))

	b.Reset()

	assert.Equal(t, Grid{}, b.GridSnapshot())
	assert.False(t, b.CheckWin(PlayerX))
}

func TestGridSnapshot_IsIndependent(t *testing.T) {
	b := NewBoard()
	require.True(t, b.DropDisc(2, PlayerX))

	snap := b.GridSnapshot()
	_, ok := snap.Drop(2, PlayerO)
	require.True(t, ok)
	snap[Rows-1][1] = PlayerO

	g := b.GridSnapshot()
	assert.Equal(t, PlayerX, g.Cell(Rows-1, 2))
	assert.Equal(t, None, g.Cell(Rows-2, 2))
}

func TestIsValidMove(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		column int
		want   bool
	}{
		{0, false},
		{1, true},
		{7, true},
		{8, false},
	}
	for _, tt := range tests {
		if got := b.IsValidMove(tt.column); got != tt.want {
			t.Errorf("IsValidMove(%d) got = %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, Opponent(PlayerX))
	assert.Equal(t, PlayerX, Opponent(PlayerO))
	assert.Equal(t, None, Opponent(None))
}

func TestRandomlyChooseFirstPlayer(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seenX := false
	seenO := false
	for i := 0; i < 100; i++ {
		mark := RandomlyChooseFirstPlayer(r)
		if mark != PlayerX && mark != PlayerO {
			t.Fatalf("RandomlyChooseFirstPlayer() returned invalid mark: %v", mark)
		}
		seenX = seenX || mark == PlayerX
		seenO = seenO || mark == PlayerO
	}
	if !seenX || !seenO {
		t.Errorf("RandomlyChooseFirstPlayer() did not return both marks over 100 runs. Seen X: %v, Seen O: %v", seenX, seenO)
	}

	// Same seed, same sequence.
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, RandomlyChooseFirstPlayer(a), RandomlyChooseFirstPlayer(b))
	}
}
