// Package cli holds helpers for CLI command tests. It lives apart from the
// cli package so command packages can import it without cycles.
package cli

import (
	"context"
	"testing"
	"time"

	missioncli "github.com/thenoetrevino/mission/internal/cli"
	"github.com/thenoetrevino/mission/internal/config"
	"github.com/thenoetrevino/mission/internal/logging"
	"github.com/thenoetrevino/mission/internal/session"
)

// Now is the fixed instant every CLI test runs at
var Now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// Clock returns a clock frozen at Now
func Clock() func() time.Time {
	return func() time.Time { return Now }
}

// SetupCLITest opens a seeded board on an in-memory database and returns a
// context carrying it. Commands executed with that context share the board.
func SetupCLITest(t *testing.T, opts ...session.Option) (context.Context, *missioncli.CLI) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	sessionOpts := append([]session.Option{
		session.WithLogger(logging.Discard()),
		session.WithClock(Clock()),
	}, opts...)

	c, err := missioncli.Open(context.Background(), cfg, sessionOpts...)
	if err != nil {
		t.Fatalf("Failed to open test CLI: %v", err)
	}
	c.Now = Clock()
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Failed to close test CLI: %v", err)
		}
	})

	return missioncli.WithCLI(context.Background(), c), c
}
