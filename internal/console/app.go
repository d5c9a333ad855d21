package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/Taniish2545/ConnectFour/internal/bot"
	"github.com/Taniish2545/ConnectFour/internal/game"
	"github.com/Taniish2545/ConnectFour/internal/player"
	"github.com/Taniish2545/ConnectFour/internal/session"
)

// Options tune the automated opponent.
type Options struct {
	BotDifficulty string
	BotDelay      time.Duration
}

// App is the console front end: it picks a mode, runs a session and asks
// whether to go again.
type App struct {
	lines    player.LineReader
	out      io.Writer
	renderer *Renderer
	board    *game.Board
	rand     *rand.Rand
	opts     Options
}

func NewApp(lines player.LineReader, out io.Writer, r *rand.Rand, opts Options) *App {
	return &App{
		lines:    lines,
		out:      out,
		renderer: NewRenderer(out),
		board:    game.NewBoard(),
		rand:     r,
		opts:     opts,
	}
}

// Run plays games until the user declines another one. Running out of input
// ends the program normally.
func (a *App) Run(ctx context.Context) error {
	for {
		mode, err := PromptMode(ctx, a.lines, a.out)
		if err != nil {
			return a.stop(ctx, err)
		}
		slog.InfoContext(ctx, "Mode selected", "game.mode", mode.String())

		first, second := a.seats(mode)
		s, err := session.New(a.board, first, second, a.rand, a.renderer)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		if _, err := s.Play(ctx); err != nil {
			return a.stop(ctx, err)
		}

		again, err := PromptPlayAgain(ctx, a.lines, a.out)
		if err != nil {
			return a.stop(ctx, err)
		}
		if !again {
			return nil
		}
	}
}

// seats builds player 1 as a human X and player 2 as either the bot or a
// second human playing O.
func (a *App) seats(mode Mode) (player.Player, player.Player) {
	first := player.NewHuman(game.PlayerX, a.lines, a.out)
	if mode == OnePlayer {
		return first, bot.NewPlayer(game.PlayerO, a.board, a.opts.BotDifficulty, a.rand, a.opts.BotDelay)
	}
	return first, player.NewHuman(game.PlayerO, a.lines, a.out)
}

func (a *App) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		slog.InfoContext(ctx, "Input closed, exiting")
		fmt.Fprintln(a.out)
		return nil
	}
	return err
}
