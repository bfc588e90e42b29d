package kvstore

import (
	"context"
	"database/sql"
	"sync"

	"github.com/Astemirdum/bookhaven/pkg/kvstore/migrations"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "postgres"
)

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

func migrate(ctx context.Context, db *sql.DB, dialect string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	dir := "sqlite"
	goose.SetBaseFS(migrations.SQLite)
	if dialect == dialectPostgres {
		dir = "postgres"
		goose.SetBaseFS(migrations.Postgres)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := gooseUp(ctx, db, dir); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}
