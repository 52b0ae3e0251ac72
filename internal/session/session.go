// Package session wires the board store, drag controller, event bus,
// persistence and notifications into one per-board container.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/mission/internal/board"
	"github.com/thenoetrevino/mission/internal/drag"
	"github.com/thenoetrevino/mission/internal/events"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/notify"
	"github.com/thenoetrevino/mission/internal/persistence"
	"github.com/thenoetrevino/mission/internal/seed"
	"github.com/thenoetrevino/mission/internal/types"
)

// MoveRecorder receives every successful move
type MoveRecorder interface {
	RecordMove(ctx context.Context, move models.MoveRecord) error
}

// Session holds one board and everything that reacts to it.
// It is driven from a single goroutine (the TUI loop or one CLI command).
type Session struct {
	ctx     context.Context
	logger  *slog.Logger
	now     func() time.Time
	adapter persistence.Adapter
	catalog *seed.Catalog

	store      *board.Store
	controller *drag.Controller
	bus        *events.Bus
	writer     *persistence.Writer
	center     *notify.Center
	recorder   MoveRecorder

	seeded bool
	unsubs []func()
}

// New loads the persisted board, or the seed when nothing usable is stored,
// and wires the controller to persistence, history and notifications.
func New(ctx context.Context, adapter persistence.Adapter, opts ...Option) (*Session, error) {
	cfg := &sessionConfig{
		logger: slog.Default(),
		now:    time.Now,
		ttl:    notify.DefaultTTL,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = seed.Default()
	}
	if adapter == nil {
		adapter = persistence.Nop{}
	}

	s := &Session{
		ctx:      context.WithoutCancel(ctx),
		logger:   cfg.logger,
		now:      cfg.now,
		adapter:  adapter,
		catalog:  cfg.catalog,
		bus:      events.NewBus(cfg.now),
		center:   notify.NewCenter(cfg.ttl, cfg.now),
		recorder: cfg.recorder,
	}
	s.writer = persistence.NewWriter(adapter, s, cfg.logger)

	columns, from := s.load(ctx)
	if err := s.install(columns); err != nil {
		return nil, err
	}
	s.seeded = from != originStored
	switch from {
	case originEmpty:
		s.writer.Flush(ctx)
	case originRecovered:
		// the seed is only written by the next move, after the bad document is set aside
		s.preserve(ctx)
	}

	s.unsubs = append(s.unsubs,
		s.bus.SubscribeType(events.EventBoardChanged, s.onBoardChanged),
		s.bus.SubscribeType(events.EventWorkflowTriggered, s.onWorkflowTriggered),
	)
	return s, nil
}

// origin records where the loaded board came from
type origin int

const (
	originStored    origin = iota // the persisted board
	originEmpty                   // nothing stored; seed
	originRecovered               // stored board unusable; seed
)

// load returns the persisted board, or the seed and why it was used
func (s *Session) load(ctx context.Context) ([]*models.Column, origin) {
	columns, err := s.adapter.Load(ctx)
	switch {
	case errors.Is(err, persistence.ErrNoState):
		s.logger.Debug("no persisted board, using seed")
		return s.catalog.Columns(s.now()), originEmpty
	case err != nil:
		s.logger.Warn("persisted board is unreadable, using seed", "error", err)
		return s.catalog.Columns(s.now()), originRecovered
	}

	if err := board.Validate(columns); err != nil {
		s.logger.Warn("persisted board is malformed, using seed", "error", err)
		return s.catalog.Columns(s.now()), originRecovered
	}
	return columns, originStored
}

func (s *Session) preserve(ctx context.Context) {
	p, ok := s.adapter.(persistence.Preserver)
	if !ok {
		return
	}
	if err := p.Preserve(ctx); err != nil {
		s.logger.Error("failed to preserve unreadable board", "error", err)
		return
	}
	s.logger.Warn("unreadable board kept for recovery", "key", persistence.CorruptKey)
}

func (s *Session) install(columns []*models.Column) error {
	store, err := board.New(columns)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}
	s.store = store
	s.controller = drag.NewController(store,
		drag.WithObserver(s.bus),
		drag.WithNotificationSink(s.bus),
		drag.WithLogger(s.logger),
	)
	return nil
}

func (s *Session) onBoardChanged(e events.Event) {
	if !s.writer.Flush(s.ctx) {
		s.center.Add(notify.LevelWarning, "Not Saved", "Board changes could not be saved; see the log for details")
	}

	if s.recorder == nil || e.Move == nil || e.Move.Item == nil {
		return
	}
	record := models.MoveRecord{
		ItemID:     e.Move.Item.ID,
		ItemTitle:  e.Move.Item.Title,
		FromColumn: e.Move.From,
		ToColumn:   e.Move.To,
		FromIndex:  e.Move.FromIndex,
		ToIndex:    e.Move.ToIndex,
		Kind:       e.Move.Kind.String(),
		MovedAt:    e.Timestamp,
	}
	if err := s.recorder.RecordMove(s.ctx, record); err != nil {
		s.logger.Warn("failed to record move", "item_id", record.ItemID, "error", err)
	}
}

func (s *Session) onWorkflowTriggered(e events.Event) {
	if e.Notification != nil {
		s.center.Notify(*e.Notification)
	}
}

// Store returns the live board
func (s *Session) Store() *board.Store { return s.store }

// Controller returns the drag controller bound to the live board
func (s *Session) Controller() *drag.Controller { return s.controller }

// Notifications returns the notification center
func (s *Session) Notifications() *notify.Center { return s.center }

// Columns returns a deep copy of the live board.
func (s *Session) Columns() []*models.Column { return s.store.Columns() }

// Workflows returns the workflow catalog
func (s *Session) Workflows() []models.Workflow { return s.catalog.Workflows(s.now()) }

// Seeded reports whether the board came from the seed rather than storage
func (s *Session) Seeded() bool { return s.seeded }

// SaveFailures returns how many writes have failed in this session
func (s *Session) SaveFailures() int { return s.writer.Failures() }

// Subscribe registers handler for every board and workflow event.
// The returned function unsubscribes.
func (s *Session) Subscribe(handler events.Handler) func() {
	unsub := s.bus.Subscribe(handler)
	s.unsubs = append(s.unsubs, unsub)
	return unsub
}

// Move performs one complete drag gesture: start on itemID, drop on dropTargetID.
// An empty dropTargetID cancels.
func (s *Session) Move(itemID, dropTargetID string) drag.Result {
	s.controller.OnDragStart(types.ItemID(itemID))
	return s.controller.OnDragEnd(types.ItemID(itemID), dropTargetID)
}

// Reset restores the seed board, persists it and clears notifications.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.install(s.catalog.Columns(s.now())); err != nil {
		return err
	}
	s.seeded = true
	s.center.DismissAll()
	if !s.writer.Flush(ctx) {
		return errors.New("failed to persist reset board")
	}
	return nil
}

// Close detaches every subscriber. The session must not be used afterwards.
func (s *Session) Close() error {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	return nil
}
