package orm

import (
	"context"
	"database/sql"
)

// RowHandler is called once per result row. rows is positioned at the row
// and is only valid for the duration of the call. Returning an error stops
// the iteration and is returned from Select.
type RowHandler func(rows *sql.Rows) error

// Select runs a raw query on q and hands every row to fn.
// The result set is closed on every return path.
func Select(ctx context.Context, q Querier, query string, fn RowHandler, args ...any) error {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err() //nolint:wrapcheck // pass through
}
