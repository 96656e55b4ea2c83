package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type renderer interface {
	Render(state entity.GameState) error
}

type RoundController struct {
	logger *slog.Logger

	reader   lineReader
	renderer renderer
}

func NewRoundController(logger *slog.Logger, reader lineReader, renderer renderer) *RoundController {
	return &RoundController{
		logger: logger.With("component", "round_controller"),

		reader:   reader,
		renderer: renderer,
	}
}

// PlayRound - reads one line and applies it to state.
// The returned error describes why the round was rejected, the returned
// state is always the one to show next.
func (that *RoundController) PlayRound(ctx context.Context, state entity.GameState) (entity.GameState, error) {
	line, err := that.reader.ReadLine(ctx)
	if err != nil {
		state.Message = entity.InvalidInputMessage
		if !errors.Is(err, apperror.ErrReadFailure) {
			err = fmt.Errorf("%w: %w", apperror.ErrReadFailure, err)
		}
		return state, err
	}

	next, err := ApplyInput(state, line)
	if err != nil {
		return next, fmt.Errorf("round rejected: %w", err)
	}

	return CheckTerminal(next), nil
}

// Run - plays a new game until it is won or tied.
// Rejected rounds are retried without limit. It stops early only when ctx is
// done or the input reaches end of stream.
func (that *RoundController) Run(ctx context.Context) (entity.GameState, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not start game: %w", err)
	}

	log := that.logger.With("game_id", gameID)
	state := entity.NewGameState(gameID)

	if err = that.renderer.Render(state); err != nil {
		return state, fmt.Errorf("failed to render game: %w", err)
	}

	log.Info("game started")

	for !state.IsFinished() {
		if err = ctx.Err(); err != nil {
			return state, fmt.Errorf("game interrupted: %w", err)
		}

		var roundErr error
		state, roundErr = that.PlayRound(ctx, state)
		if roundErr != nil {
			log.Debug("round rejected", "round", state.Round, "player", state.Turn, "error", roundErr)
		}

		if err = that.renderer.Render(state); err != nil {
			return state, fmt.Errorf("failed to render game: %w", err)
		}

		if errors.Is(roundErr, io.EOF) {
			log.Warn("input closed before the game ended", "round", state.Round)
			return state, fmt.Errorf("%w: %w", apperror.ErrInputClosed, roundErr)
		}
	}

	log.Info("game finished", "status", state.Status, "player", state.Turn, "rounds", state.Round)

	return state, nil
}
