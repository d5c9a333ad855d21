package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Taniish2545/ConnectFour/internal/player"
)

type Mode int

const (
	OnePlayer Mode = iota + 1
	TwoPlayer
)

func (m Mode) String() string {
	switch m {
	case OnePlayer:
		return "one-player"
	case TwoPlayer:
		return "two-player"
	default:
		return "unknown"
	}
}

// ParseMode maps "1" to one-player. Any other answer starts a two-player game.
func ParseMode(input string) Mode {
	if strings.TrimSpace(input) == "1" {
		return OnePlayer
	}
	return TwoPlayer
}

// ParsePlayAgain reports whether the answer is a yes.
func ParsePlayAgain(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "y")
}

func PromptMode(ctx context.Context, lines player.LineReader, out io.Writer) (Mode, error) {
	fmt.Fprint(out, "Choose mode (1 = One-player, 2 = Two-player): ")
	line, err := lines.ReadLine(ctx)
	if err != nil {
		return 0, err
	}
	return ParseMode(line), nil
}

func PromptPlayAgain(ctx context.Context, lines player.LineReader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Play again? (y/n): ")
	line, err := lines.ReadLine(ctx)
	if err != nil {
		return false, err
	}
	return ParsePlayAgain(line), nil
}
