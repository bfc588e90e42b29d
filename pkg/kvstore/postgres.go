package kvstore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type postgresStore struct {
	db  *pgxpool.Pool
	qb  sq.StatementBuilderType
	log *zap.Logger
}

func NewPostgres(ctx context.Context, dsn string, log *zap.Logger) (*postgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse dsn")
	}
	cfg.MaxConns = 10
	cfg.MaxConnIdleTime = time.Minute

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(pingCtx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool")
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, classify(errors.Wrap(err, "ping postgres"))
	}

	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	if err := migrate(ctx, db, dialectPostgres); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, err
	}
	_ = db.Close()

	return &postgresStore{
		db:  pool,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log: log.Named("postgres"),
	}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, error) {
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
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", classify(errors.Wrapf(err, "get %s", key))
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.qb.Insert(tableName).
		Columns(keyColumn, valueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("on conflict (%s) do update set %s = excluded.%s, updated_at = now()",
			keyColumn, valueColumn, valueColumn)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.log.Error("Set", zap.String("query", query), zap.String("key", key), zap.Error(err))
		return classify(errors.Wrapf(err, "set %s", key))
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.qb.Delete(tableName).Where(sq.Eq{keyColumn: key}).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return classify(errors.Wrapf(err, "delete %s", key))
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}

// classify marks connection-level failures with ErrUnavailable.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsConnectionException(pgErr.Code) ||
			pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.CannotConnectNow {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
