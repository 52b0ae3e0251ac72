package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/config"
	"github.com/thenoetrevino/mission/internal/session"
	"github.com/thenoetrevino/mission/internal/tui"
)

// shutdownGrace is how long a cancelled program gets to finish its last save
const shutdownGrace = 500 * time.Millisecond

// stopper is the part of *tea.Program used during shutdown
type stopper interface {
	Kill()
}

// waitForExit gives the program grace to finish, then kills it. It always
// waits for the run loop to return so the board is not closed under a save.
func waitForExit(p stopper, done <-chan error, grace time.Duration) {
	select {
	case <-done:
	case <-time.After(grace):
		slog.Warn("program did not exit within grace period, killing it")
		p.Kill()
		<-done
	}
}

// Launch opens the configured board and runs the TUI until the user quits
// or ctx is cancelled
func Launch(ctx context.Context, cfg *config.Config) error {
	cliInstance, err := cli.Open(ctx, cfg, session.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer cli.Release(cliInstance)

	if cliInstance.Session.Seeded() {
		slog.Info("starting from the default board", "storage", cfg.Storage.Backend, "path", cfg.Storage.Path)
	}

	model := tui.New(cliInstance.Session, cfg, tui.WithLogger(slog.Default()))
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		waitForExit(p, errChan, shutdownGrace)
	}

	return nil
}
