package bot

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/Taniish2545/ConnectFour/internal/game"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("bot")

// ErrNoValidMove is returned when the board has no column left to play.
var ErrNoValidMove = errors.New("bot: no valid column left")

// GridSource gives read-only access to the live board.
type GridSource interface {
	GridSnapshot() game.Grid
}

// Player is the automated seat. It implements player.Player.
type Player struct {
	mark       game.PlayerMark
	board      GridSource
	difficulty string
	calculator *MoveCalculator
	delay      time.Duration
}

// NewPlayer creates a bot seat that inspects board before every move.
// delay simulates thinking time and may be zero.
func NewPlayer(mark game.PlayerMark, board GridSource, difficulty string, r *rand.Rand, delay time.Duration) *Player {
	return &Player{
		mark:       mark,
		board:      board,
		difficulty: difficulty,
		calculator: NewMoveCalculator(r),
		delay:      delay,
	}
}

func (p *Player) Mark() game.PlayerMark {
	return p.mark
}

func (p *Player) IsBot() bool {
	return true
}

// GetMove returns a column that is valid on the current board.
func (p *Player) GetMove(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.GetMove", trace.WithAttributes(
		attribute.String("player.mark", string(p.mark)),
		attribute.String("bot.difficulty", p.difficulty),
	))
	defer span.End()

	if p.delay > 0 {
		slog.DebugContext(ctx, "Bot is thinking...", "player.mark", string(p.mark))
		timer := time.NewTimer(p.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			span.RecordError(ctx.Err())
			span.SetStatus(codes.Error, "Bot move cancelled")
			return 0, ctx.Err()
		}
	}

	column := p.calculator.CalculateNextMove(p.board.GridSnapshot(), p.mark, p.difficulty)
	if column == -1 {
		span.RecordError(ErrNoValidMove)
		span.SetStatus(codes.Error, "No valid column")
		return 0, ErrNoValidMove
	}

	span.SetAttributes(attribute.Int("move.column", column))
	slog.DebugContext(ctx, "Bot chose column", "player.mark", string(p.mark), "move.column", column)
	return column, nil
}
