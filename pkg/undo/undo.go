// Package undo holds the single most recent deletion so it can be restored
// within a grace window.
package undo

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"ideatracker/pkg/ideas"
)

// DefaultWindow is how long a deletion stays restorable
const DefaultWindow = 5 * time.Second

// ErrUndoExpired is returned by Restore when the deletion has expired or was
// superseded by a newer one
var ErrUndoExpired = errors.New("undo no longer available")

// Store is the part of the idea store the coordinator needs
type Store interface {
	Remove(id string) (ideas.Idea, error)
	Reinsert(idea ideas.Idea)
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithClock sets the time source used for deadlines
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

type pendingDeletion struct {
	idea     ideas.Idea
	deadline time.Time
	seq      uint64
}

// Coordinator is either idle or holds exactly one pending deletion.
// A new deletion replaces the pending one, which is then gone for good.
type Coordinator struct {
	store   Store
	window  time.Duration
	now     func() time.Time
	logger  *zap.Logger
	pending *pendingDeletion
	seq     uint64
}

// NewCoordinator creates a coordinator over store. A non-positive window
// falls back to DefaultWindow.
func NewCoordinator(store Store, window time.Duration, opts ...Option) *Coordinator {
	if window <= 0 {
		window = DefaultWindow
	}
	c := &Coordinator{
		store:  store,
		window: window,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Window returns the grace window
func (c *Coordinator) Window() time.Duration {
	return c.window
}

// Handle restores one particular deletion
type Handle struct {
	Idea     ideas.Idea
	Deadline time.Time

	c   *Coordinator
	seq uint64
}

// Restore puts the deleted idea back at the end of the store. It returns
// ErrUndoExpired if the grace window passed or a newer deletion replaced this one.
func (h *Handle) Restore() (ideas.Idea, error) {
	return h.c.restore(h.seq)
}

// Delete detaches the idea from the store and makes it the pending deletion
func (c *Coordinator) Delete(id string) (*Handle, error) {
	idea, err := c.store.Remove(id)
	if err != nil {
		return nil, err
	}

	if c.pending != nil {
		c.logger.Info("pending_deletion_superseded",
			zap.String("id", c.pending.idea.ID),
			zap.String("title", c.pending.idea.Title))
	}

	c.seq++
	c.pending = &pendingDeletion{
		idea:     idea,
		deadline: c.now().Add(c.window),
		seq:      c.seq,
	}

	c.logger.Debug("idea_deleted",
		zap.String("id", idea.ID),
		zap.Time("deadline", c.pending.deadline))

	return &Handle{
		Idea:     idea,
		Deadline: c.pending.deadline,
		c:        c,
		seq:      c.seq,
	}, nil
}

// Undo restores whatever deletion is currently pending
func (c *Coordinator) Undo() (ideas.Idea, error) {
	if c.pending == nil {
		return ideas.Idea{}, ErrUndoExpired
	}
	return c.restore(c.pending.seq)
}

// Expire drops the pending deletion if its deadline is at or before now,
// returning the idea that is now unrecoverable
func (c *Coordinator) Expire(now time.Time) (ideas.Idea, bool) {
	if c.pending == nil || now.Before(c.pending.deadline) {
		return ideas.Idea{}, false
	}
	idea := c.pending.idea
	c.pending = nil
	c.logger.Debug("pending_deletion_expired", zap.String("id", idea.ID))
	return idea, true
}

// Pending returns the pending deletion and its deadline, if any
func (c *Coordinator) Pending() (ideas.Idea, time.Time, bool) {
	if c.pending == nil {
		return ideas.Idea{}, time.Time{}, false
	}
	return c.pending.idea, c.pending.deadline, true
}

func (c *Coordinator) restore(seq uint64) (ideas.Idea, error) {
	if c.pending == nil || c.pending.seq != seq {
		return ideas.Idea{}, ErrUndoExpired
	}
	if _, expired := c.Expire(c.now()); expired {
		return ideas.Idea{}, ErrUndoExpired
	}

	idea := c.pending.idea
	c.pending = nil
	c.store.Reinsert(idea)

	c.logger.Debug("idea_restored", zap.String("id", idea.ID))
	return idea, nil
}
