package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Taniish2545/ConnectFour/internal/game"
	"github.com/Taniish2545/ConnectFour/internal/player"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")
)

// Game outcomes recorded on spans and metrics.
const (
	OutcomeWin     = "win"
	OutcomeDraw    = "draw"
	OutcomeAborted = "aborted"
)

// Display shows the game to the people at the console.
type Display interface {
	ShowBoard(grid game.Grid)
	Message(msg string)
}

// Result describes how a session ended.
type Result struct {
	ID     string
	Winner game.PlayerMark
	Draw   bool
	Moves  int
}

// Session runs one game between two seats on a shared board.
type Session struct {
	ID      string
	board   *game.Board
	seats   [2]player.Player
	rand    *rand.Rand
	display Display

	games        metric.Int64Counter
	moves        metric.Int64Counter
	invalidMoves metric.Int64Counter
}

// New creates a session. The two players must hold different playing marks.
func New(board *game.Board, first, second player.Player, r *rand.Rand, display Display) (*Session, error) {
	if !first.Mark().IsPlayable() || !second.Mark().IsPlayable() {
		return nil, fmt.Errorf("players must play X or O, got %q and %q", first.Mark(), second.Mark())
	}
	if first.Mark() == second.Mark() {
		return nil, fmt.Errorf("both players use mark %q", first.Mark())
	}

	s := &Session{
		ID:      uuid.New().String(),
		board:   board,
		seats:   [2]player.Player{first, second},
		rand:    r,
		display: display,
	}

	var err error
	if s.games, err = meter.Int64Counter("connectfour.games", metric.WithDescription("Finished or aborted game sessions")); err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}
	if s.moves, err = meter.Int64Counter("connectfour.moves", metric.WithDescription("Accepted disc drops")); err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	if s.invalidMoves, err = meter.Int64Counter("connectfour.invalid_moves", metric.WithDescription("Rejected disc drops")); err != nil {
		return nil, fmt.Errorf("failed to create invalid moves counter: %w", err)
	}
	return s, nil
}

// Play resets the board and alternates turns until a win, a tie, or a failing
// move source. Rejected drops do not pass the turn.
func (s *Session) Play(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "session.Play", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Bool("session.vs_bot", s.seats[0].IsBot() || s.seats[1].IsBot()),
	))
	defer span.End()

	result := Result{ID: s.ID}
	s.board.Reset()

	current := s.seatFor(game.RandomlyChooseFirstPlayer(s.rand))
	span.SetAttributes(attribute.String("session.first_player", string(current.Mark())))
	slog.InfoContext(ctx, "Game started", "session.id", s.ID, "player.mark", string(current.Mark()))
	s.display.Message(fmt.Sprintf("Player %s starts!", current.Mark()))

	for {
		s.display.ShowBoard(s.board.GridSnapshot())
		s.display.Message(fmt.Sprintf("Turn: Player %s", current.Mark()))

		accepted, err := s.playTurn(ctx, current, result.Moves+1)
		if err != nil {
			s.games.Add(ctx, 1, metric.WithAttributes(attribute.String("game.outcome", OutcomeAborted)))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game aborted")
			if errors.Is(err, context.Canceled) {
				slog.InfoContext(ctx, "Game cancelled", "session.id", s.ID)
			} else {
				slog.WarnContext(ctx, "Game aborted", "session.id", s.ID, "error", err)
			}
			return result, fmt.Errorf("player %s move: %w", current.Mark(), err)
		}
		if !accepted {
			s.display.Message("Invalid move! Try again.")
			continue
		}
		result.Moves++

		if s.board.CheckWin(current.Mark()) {
			result.Winner = current.Mark()
			s.display.ShowBoard(s.board.GridSnapshot())
			s.display.Message(fmt.Sprintf("Player %s WINS!", current.Mark()))
			s.finish(ctx, span, result, OutcomeWin)
			return result, nil
		}
		if s.board.IsFull() {
			result.Draw = true
			s.display.ShowBoard(s.board.GridSnapshot())
			s.display.Message("It's a TIE!")
			s.finish(ctx, span, result, OutcomeDraw)
			return result, nil
		}

		current = s.other(current)
	}
}

// playTurn asks p for a column and tries to drop it.
func (s *Session) playTurn(ctx context.Context, p player.Player, moveNumber int) (bool, error) {
	ctx, span := tracer.Start(ctx, "session.playTurn", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("player.mark", string(p.Mark())),
		attribute.Bool("player.bot", p.IsBot()),
		attribute.Int("move.number", moveNumber),
	))
	defer span.End()

	column, err := p.GetMove(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not get move")
		return false, err
	}
	span.SetAttributes(attribute.Int("move.column", column))

	markAttr := metric.WithAttributes(attribute.String("player.mark", string(p.Mark())))
	if !s.board.DropDisc(column, p.Mark()) {
		slog.WarnContext(ctx, "invalid move from player", "session.id", s.ID, "player.mark", string(p.Mark()), "move.column", column)
		span.SetAttributes(attribute.Bool("move.valid", false))
		s.invalidMoves.Add(ctx, 1, markAttr)
		return false, nil
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	s.moves.Add(ctx, 1, markAttr)
	slog.DebugContext(ctx, "Disc dropped", "session.id", s.ID, "player.mark", string(p.Mark()), "move.column", column)
	return true, nil
}

func (s *Session) finish(ctx context.Context, span trace.Span, result Result, outcome string) {
	span.SetAttributes(
		attribute.String("game.outcome", outcome),
		attribute.String("game.winner", string(result.Winner)),
		attribute.Int("game.moves", result.Moves),
	)
	s.games.Add(ctx, 1, metric.WithAttributes(attribute.String("game.outcome", outcome)))
	slog.InfoContext(ctx, "Game finished", "session.id", s.ID, "game.outcome", outcome, "game.winner", string(result.Winner), "game.moves", result.Moves)
}

// seatFor returns the player holding mark, or the first seat if none does.
func (s *Session) seatFor(mark game.PlayerMark) player.Player {
	if s.seats[1].Mark() == mark {
		return s.seats[1]
	}
	return s.seats[0]
}

func (s *Session) other(p player.Player) player.Player {
	if p == s.seats[0] {
		return s.seats[1]
	}
	return s.seats[0]
}
