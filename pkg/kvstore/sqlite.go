package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type sqliteStore struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
}

// NewSQLite opens (or creates) the database file at path and applies migrations.
func NewSQLite(ctx context.Context, path string, log *zap.Logger) (*sqliteStore, error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}
	if err := migrate(ctx, db, dialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		log: log.Named("sqlite"),
	}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.qb.Select(valueColumn).
		From(tableName).
		Where(sq.Eq{keyColumn: key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}
	s.log.Debug("Get", zap.String("query", query), zap.String("key", key))

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", errors.Wrapf(err, "get %s", key)
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.qb.Insert(tableName).
		Columns(keyColumn, valueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("on conflict(%s) do update set %s = excluded.%s, updated_at = current_timestamp",
			keyColumn, valueColumn, valueColumn)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("Set", zap.String("query", query), zap.String("key", key), zap.Error(err))
		return errors.Wrapf(err, "set %s", key)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.qb.Delete(tableName).Where(sq.Eq{keyColumn: key}).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
