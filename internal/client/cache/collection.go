// Package cache holds the web client's local copy of each table and the
// mutation handlers that write through to the store.
//
// A Collection is replaced wholesale by every successful fetch; nothing
// patches it in place. Each fetch takes a generation number and a result is
// applied only if no newer fetch has been applied already, so a slow stale
// refetch can never overwrite a fresher one.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/logging"
)

// State is the load state of a Collection.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Status describes a Collection at one moment.
type Status struct {
	State    State
	Err      error
	LoadedAt time.Time
	Size     int
}

// Lister fetches the full, ordered contents of one table.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type Collection[T any] struct {
	src    Lister[T]
	logger logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	items    []T
	state    State
	err      error
	loadedAt time.Time
	// generation handed to the latest fetch, of the applied one and of the
	// fetch that set err
	nextGen    uint64
	appliedGen uint64
	errGen     uint64
	inflight   int
}

func NewCollection[T any](name string, src Lister[T], l logging.Logger) *Collection[T] {
	return &Collection[T]{
		src:    src,
		logger: l.With("module", "cache", "collection", name),
		now:    time.Now,
		items:  []T{},
	}
}

// Snapshot returns a copy of the cached items.
func (c *Collection[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Collection[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{State: c.state, Err: c.err, LoadedAt: c.loadedAt, Size: len(c.items)}
}

// Activate loads the collection unless it is already loaded. Views call
// Refresh on every load; Activate guards actions that need a snapshot to
// look ids up in.
func (c *Collection[T]) Activate(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.state == Loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.Refresh(ctx)
}

// Refresh refetches the table and replaces the snapshot. On failure the
// previous snapshot is kept and the state becomes Failed. A result that
// arrives after a newer one was applied is discarded.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.inflight++
	c.state = Loading
	c.mu.Unlock()

	items, err := c.src.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	defer c.settle()

	if gen < c.appliedGen {
		c.logger.Debug(ctx, "discarding stale fetch", "generation", gen, "applied", c.appliedGen)
		return err
	}

	if err != nil {
		if gen > c.errGen {
			c.err, c.errGen = err, gen
		}
		c.logger.Warn(ctx, "fetch failed", "generation", gen, "error", err.Error())
		return err
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
	c.appliedGen = gen
	c.loadedAt = c.now()
	// an older success does not hide the failure of a newer fetch
	if gen > c.errGen {
		c.err = nil
	}
	c.logger.Debug(ctx, "fetch applied", "generation", gen, "size", len(items))
	return nil
}

// settle derives the state once a fetch has finished. Callers hold mu.
func (c *Collection[T]) settle() {
	switch {
	case c.inflight > 0:
		c.state = Loading
	case c.err != nil:
		c.state = Failed
	default:
		c.state = Loaded
	}
}
