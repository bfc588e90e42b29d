package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/pkg/kvstore"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Repository keeps a whole collection as one JSON array under one key.
type Repository[T model.Record] interface {
	// Load returns an empty sequence when the key is absent and an
	// error wrapping errs.ErrMalformed when the stored text is not a valid sequence.
	Load(ctx context.Context) ([]T, error)
	// Save overwrites the stored sequence with items.
	Save(ctx context.Context, items []T) error
	Clear(ctx context.Context) error
	Key() string
}

type repository[T model.Record] struct {
	store kvstore.Store
	key   string
	log   *zap.Logger
}

func NewRepository[T model.Record](store kvstore.Store, key string, log *zap.Logger) *repository[T] {
	return &repository[T]{
		store: store,
		key:   key,
		log:   log.Named("repo").With(zap.String("key", key)),
	}
}

func (r *repository[T]) Key() string { return r.key }

func (r *repository[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []T{}, nil
		}
		return nil, errors.Wrapf(err, "load %s", r.key)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(errs.ErrMalformed, "%s: %v", r.key, err)
	}
	if items == nil {
		items = []T{}
	}
	r.log.Debug("Load", zap.Int("count", len(items)))
	return items, nil
}

func (r *repository[T]) Save(ctx context.Context, items []T) error {
	raw, err := Encode(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", r.key)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return errors.Wrapf(err, "save %s", r.key)
	}
	r.log.Debug("Save", zap.Int("count", len(items)), zap.Int("bytes", len(raw)))
	return nil
}

func (r *repository[T]) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return errors.Wrapf(err, "clear %s", r.key)
	}
	return nil
}

// Encode serializes a sequence the same way it is stored.
func Encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
