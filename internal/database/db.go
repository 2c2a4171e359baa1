package database

import (
	"context"
	"database/sql"
)

// DB is the minimal query surface the repositories need. The concrete
// implementation wraps a pgx pool; SQLDB exposes a database/sql view for
// tooling (the migration runner) that wants the standard interface.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
