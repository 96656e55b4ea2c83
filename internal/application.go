package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"golang.org/x/term"
)

// RunApp - runs one game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	opts := console.Options{
		ClearScreen: interactive && !conf.Console.DisableClearScreen,
		Colors:      interactive && !conf.Console.DisableColors,
	}

	log.Debug("Starting game", "interactive", interactive)

	return Play(ctx, logger, os.Stdin, os.Stdout, opts)
}

// Play - runs one game reading moves from in and drawing to out.
// It returns nil once the game is won or tied, or when ctx is canceled.
func Play(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer, opts console.Options) error {
	log := logger.With("component", "app")

	controller := usecase.NewRoundController(logger, console.NewLineReader(in), console.NewRenderer(out, opts))

	gameErrCh := make(chan error, 1)
	go func() {
		_, err := controller.Run(ctx)
		gameErrCh <- err
	}()

	select {
	case err := <-gameErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
