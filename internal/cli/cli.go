package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/mission/internal/cli/styles"
	"github.com/thenoetrevino/mission/internal/config"
	"github.com/thenoetrevino/mission/internal/database"
	"github.com/thenoetrevino/mission/internal/persistence"
	"github.com/thenoetrevino/mission/internal/session"
)

// ErrNoCLI is returned when a command runs without a CLI and none can be built
var ErrNoCLI = errors.New("cli not initialized")

// CLI represents the CLI application context
type CLI struct {
	Config  *config.Config
	Session *session.Session
	Repo    *database.Repository
	Now     func() time.Time

	db       *sql.DB
	borrowed bool
}

// NewCLI loads the user's config and opens the board it points at
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Open(ctx, cfg)
}

// Open builds a CLI for cfg. The memory backend uses an in-memory SQLite
// database so move history behaves the same for both backends.
func Open(ctx context.Context, cfg *config.Config, opts ...session.Option) (*CLI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	styles.Init(cfg.ColorScheme)

	path := cfg.Storage.Path
	if cfg.Storage.Backend == config.BackendMemory {
		path = ":memory:"
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := database.NewRepository(db)

	sessionOpts := append([]session.Option{
		session.WithNotificationTTL(cfg.Notifications.TTL),
		session.WithMoveRecorder(repo),
	}, opts...)

	sess, err := session.New(ctx, persistence.NewJSONAdapter(repo), sessionOpts...)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	return &CLI{
		Config:  cfg,
		Session: sess,
		Repo:    repo,
		Now:     time.Now,
		db:      db,
	}, nil
}

// Release closes c and logs any failure
func Release(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// Close cleans up CLI resources. A CLI injected with WithCLI is left open
// for its owner.
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	if err := c.Session.Close(); err != nil {
		slog.Error("failed to close session", "error", err)
	}
	return c.db.Close()
}

type contextKey string

const cliKey contextKey = "cli"

// WithCLI attaches an already open CLI to ctx. Commands run under ctx use it
// instead of opening the configured board.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// GetCLIFromContext returns the CLI attached to ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	if c, ok := ctx.Value(cliKey).(*CLI); ok && c != nil {
		return &CLI{
			Config:   c.Config,
			Session:  c.Session,
			Repo:     c.Repo,
			Now:      c.Now,
			db:       c.db,
			borrowed: true,
		}, nil
	}
	return NewCLI(ctx)
}
