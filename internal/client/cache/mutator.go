package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/logging"
)

var (
	ErrInvalidDraft = errors.New("invalid input")
	ErrNotConfirmed = errors.New("delete not confirmed")
	ErrUnknownID    = errors.New("no such item")
	ErrEditClosed   = errors.New("edit session closed")
)

// Table is the remote CRUD surface of one table.
type Table[T, D, P any] interface {
	Lister[T]
	Insert(ctx context.Context, d D) (T, error)
	Update(ctx context.Context, id string, p P) error
	Delete(ctx context.Context, id string) error
}

// Entity is a cached row that knows how to flip its own status.
type Entity[P any] interface {
	GetID() string
	TogglePatch() P
}

type Draft[D any] interface {
	Normalize() D
	Validate() error
}

type Patch[P any] interface {
	Normalize() P
	Validate() error
	Touch(at time.Time) P
}

// Mutator writes to a Table and then refetches its Collection. The insert
// response is never merged into the cache.
type Mutator[T Entity[P], D Draft[D], P Patch[P]] struct {
	table  Table[T, D, P]
	coll   *Collection[T]
	logger logging.Logger
	now    func() time.Time
}

func NewMutator[T Entity[P], D Draft[D], P Patch[P]](table Table[T, D, P], coll *Collection[T], l logging.Logger) *Mutator[T, D, P] {
	return &Mutator[T, D, P]{table: table, coll: coll, logger: l.With("module", "mutator"), now: time.Now}
}

// Collection returns the cache this Mutator refreshes.
func (m *Mutator[T, D, P]) Collection() *Collection[T] { return m.coll }

// Add validates d locally and inserts it. Invalid drafts never reach the
// store and are reported as ErrInvalidDraft.
func (m *Mutator[T, D, P]) Add(ctx context.Context, d D) error {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	if _, err := m.table.Insert(ctx, d); err != nil {
		return err
	}
	return m.coll.Refresh(ctx)
}

func (m *Mutator[T, D, P]) find(id string) (T, error) {
	for _, it := range m.coll.Snapshot() {
		if it.GetID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, ErrUnknownID
}

// Toggle flips the status of the cached item with the given id.
func (m *Mutator[T, D, P]) Toggle(ctx context.Context, id string) error {
	it, err := m.find(id)
	if err != nil {
		return err
	}
	if err := m.table.Update(ctx, id, it.TogglePatch()); err != nil {
		return err
	}
	return m.coll.Refresh(ctx)
}

// Delete asks confirm first; a declined confirmation makes no remote call.
func (m *Mutator[T, D, P]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}
	if err := m.table.Delete(ctx, id); err != nil {
		return err
	}
	m.logger.Info(ctx, "deleted", "id", id)
	return m.coll.Refresh(ctx)
}

// BeginEdit opens an edit session on a cached item.
func (m *Mutator[T, D, P]) BeginEdit(id string) (*EditSession[T, D, P], error) {
	it, err := m.find(id)
	if err != nil {
		return nil, err
	}
	return &EditSession[T, D, P]{m: m, original: it}, nil
}

// EditSession is the form state of one item being edited. It is closed by
// a successful Save or by Cancel; a failed Save leaves it open.
type EditSession[T Entity[P], D Draft[D], P Patch[P]] struct {
	m        *Mutator[T, D, P]
	original T

	mu     sync.Mutex
	closed bool
}

// Original is the item as it was when the session began.
func (s *EditSession[T, D, P]) Original() T { return s.original }

func (s *EditSession[T, D, P]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *EditSession[T, D, P]) Cancel() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Save sends the edited fields with a refreshed updated_at, refetches and
// closes the session.
func (s *EditSession[T, D, P]) Save(ctx context.Context, p P) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrEditClosed
	}

	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	p = p.Touch(s.m.now())

	id := s.original.GetID()
	if err := s.m.table.Update(ctx, id, p); err != nil {
		return err
	}
	s.closed = true
	return s.m.coll.Refresh(ctx)
}
