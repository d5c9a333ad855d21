package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Taniish2545/ConnectFour/internal/game"
)

// Human takes moves from a person typing column numbers.
type Human struct {
	mark  game.PlayerMark
	lines LineReader
	out   io.Writer
}

// NewHuman creates a human seat reading from lines and prompting on out.
func NewHuman(mark game.PlayerMark, lines LineReader, out io.Writer) *Human {
	return &Human{
		mark:  mark,
		lines: lines,
		out:   out,
	}
}

func (h *Human) Mark() game.PlayerMark {
	return h.mark
}

func (h *Human) IsBot() bool {
	return false
}

// GetMove asks until the input parses as a column in range. Whether the
// column still has room is up to the board, not the player.
func (h *Human) GetMove(ctx context.Context) (int, error) {
	for {
		fmt.Fprintf(h.out, "Player %s, choose a column (%d-%d): ", h.mark, game.ColumnMin, game.ColumnMax)
		line, err := h.lines.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		column, ok := ParseColumn(line)
		if !ok {
			slog.DebugContext(ctx, "rejected column input", "player.mark", string(h.mark), "input", line)
			fmt.Fprintf(h.out, "Invalid input. Enter a number between %d and %d.\n", game.ColumnMin, game.ColumnMax)
			continue
		}
		return column, nil
	}
}

// ParseColumn parses a 1-indexed column, rejecting anything outside the board.
func ParseColumn(input string) (int, bool) {
	column, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	if column < game.ColumnMin || column > game.ColumnMax {
		return 0, false
	}
	return column, true
}
