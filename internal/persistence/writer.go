package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/mission/internal/models"
)

// Snapshotter supplies the current board
type Snapshotter interface {
	Columns() []*models.Column
}

// Writer saves the board after every change. Failures are logged and
// counted but never returned: the in-memory board stays authoritative.
type Writer struct {
	adapter Adapter
	board   Snapshotter
	logger  *slog.Logger
	timeout time.Duration

	failures int
}

// NewWriter creates a write-through writer. logger may be nil.
func NewWriter(adapter Adapter, board Snapshotter, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		adapter: adapter,
		board:   board,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Flush writes the current board. It reports whether the write succeeded.
func (w *Writer) Flush(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.adapter.Save(ctx, w.board.Columns()); err != nil {
		w.failures++
		w.logger.Warn("failed to persist board state", "error", err, "failures", w.failures)
		return false
	}
	return true
}

// Failures returns the number of failed writes so far
func (w *Writer) Failures() int {
	return w.failures
}
