package orm

import (
	"context"
	"database/sql"
)

// Querier is the session the package functions run statements on.
// *sql.Conn, *sql.Tx and *sql.DB all satisfy it; CreateTable needs a single
// session (*sql.Conn or *sql.Tx) because it toggles session variables.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Logger is the interface for statement logging.
type Logger interface {
	Log(ctx context.Context, query string, args ...any)
}

// Debug returns a Querier that logs every statement with l before running it
// on q. q itself is not modified.
func Debug(q Querier, l Logger) Querier {
	return &loggedQuerier{raw: q, logger: l}
}

type loggedQuerier struct {
	raw    Querier
	logger Logger
}

func (lq *loggedQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	lq.logger.Log(ctx, query, args...)
	return lq.raw.QueryContext(ctx, query, args...) //nolint:wrapcheck // thin wrapper
}

func (lq *loggedQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	lq.logger.Log(ctx, query, args...)
	return lq.raw.ExecContext(ctx, query, args...) //nolint:wrapcheck // thin wrapper
}

var (
	_ Querier = (*sql.Conn)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*loggedQuerier)(nil)
)
