// Package kvstore is the persistent key-value store behind the collections.
//
// A key holds one text value and is always overwritten as a whole; there is
// no append primitive.
package kvstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotFound    = errors.New("key not found")
	ErrUnavailable = errors.New("store unavailable")
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:generate go run github.com/golang/mock/mockgen -source=store.go -destination=mocks/mock.go

type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Driver string `yaml:"driver" envconfig:"STORE_DRIVER"`
	DSN    string `yaml:"dsn" envconfig:"STORE_DSN"`
}

func New(ctx context.Context, cfg Config, log *zap.Logger) (Store, error) {
	log = log.Named("kvstore")
	switch strings.ToLower(cfg.Driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite, "sqlite3":
		return NewSQLite(ctx, cfg.DSN, log)
	case DriverPostgres, "pg":
		return NewPostgres(ctx, cfg.DSN, log)
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.Driver)
	}
}

const (
	tableName   = "kv_store"
	keyColumn   = "store_key"
	valueColumn = "store_value"
)
