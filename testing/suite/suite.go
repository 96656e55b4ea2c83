package suite

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Input - joins lines into a stream as a player would type them.
func (that *Suite) Input(lines ...string) io.Reader {
	that.Helper()

	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
