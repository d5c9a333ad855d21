package player

import (
	"context"

	"github.com/Taniish2545/ConnectFour/internal/game"
)

//go:generate mockgen -source=player.go -destination=mock_player.go -package=player

// Player is one seat of a game session. GetMove returns a 1-indexed column.
// It only fails when the move source is gone, never because of bad input.
type Player interface {
	Mark() game.PlayerMark
	IsBot() bool
	GetMove(ctx context.Context) (int, error)
}

// LineReader abstracts the console input shared by every prompt.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}
