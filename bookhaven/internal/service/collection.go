package service

import (
	"context"
	"sync"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type placement int

const (
	// insertion order, newest last
	appendBack placement = iota
	// newest first
	prependFront
)

// collection is the in-memory copy of one stored sequence. It is the source
// of truth for listing until the next Load, and every mutation rewrites the
// whole sequence in the store.
type collection[T model.Record] struct {
	mu     sync.Mutex
	repo   repository.Repository[T]
	place  placement
	items  []T
	loaded bool
	log    *zap.Logger
}

func newCollection[T model.Record](repo repository.Repository[T], place placement, log *zap.Logger) *collection[T] {
	return &collection[T]{
		repo:  repo,
		place: place,
		log:   log,
	}
}

func (c *collection[T]) load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

func (c *collection[T]) loadLocked(ctx context.Context) error {
	items, err := c.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrMalformed) {
			return err
		}
		c.log.Warn("stored sequence is unreadable, starting empty", zap.Error(err))
		items = []T{}
	}
	c.items = items
	c.loaded = true
	return nil
}

func (c *collection[T]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	return c.loadLocked(ctx)
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *collection[T]) find(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, nil
		}
	}
	return zero, errs.ErrNotFound
}

// add builds one record, places it and persists the full sequence. The
// in-memory copy only changes once the store accepted the write.
func (c *collection[T]) add(ctx context.Context, build func(taken func(id string) bool) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}

	rec := build(c.taken)

	next := make([]T, 0, len(c.items)+1)
	switch c.place {
	case prependFront:
		next = append(append(next, rec), c.items...)
	default:
		next = append(append(next, c.items...), rec)
	}
	if err := c.repo.Save(ctx, next); err != nil {
		return zero, err
	}
	c.items = next
	return rec, nil
}

func (c *collection[T]) taken(id string) bool {
	for _, item := range c.items {
		if item.RecordID() == id {
			return true
		}
	}
	return false
}

// clear drops the stored sequence and the in-memory copy.
func (c *collection[T]) clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.repo.Clear(ctx); err != nil {
		return err
	}
	c.items = []T{}
	c.loaded = true
	return nil
}
