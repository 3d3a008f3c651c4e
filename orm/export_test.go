package orm

import (
	"context"
	"database/sql"
	"errors"
)

var errMockNotImplemented = errors.New("mock: not implemented")

// BindValue exposes bindValue to orm_test.
var BindValue = bindValue

// TestQuerier is a mock Querier that records executed statements.
// Exported for use in orm_test package.
type TestQuerier struct {
	Queries []TestQuery
	// ExecErrs makes ExecContext fail for the given statements.
	ExecErrs map[string]error
}

// TestQuery holds a captured statement and its args.
type TestQuery struct {
	SQL  string
	Args []any
}

// NewTestQuerier creates an empty TestQuerier.
func NewTestQuerier() *TestQuerier {
	return &TestQuerier{}
}

func (tq *TestQuerier) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	tq.Queries = append(tq.Queries, TestQuery{query, args})
	return nil, errMockNotImplemented
}

func (tq *TestQuerier) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	tq.Queries = append(tq.Queries, TestQuery{query, args})
	if err, ok := tq.ExecErrs[query]; ok {
		return nil, err
	}
	return testResult{}, nil
}

var _ Querier = (*TestQuerier)(nil)

// LastQuery returns the most recently captured statement, or panics if empty.
func (tq *TestQuerier) LastQuery() TestQuery {
	return tq.Queries[len(tq.Queries)-1]
}

// SQL returns the captured statements in order.
func (tq *TestQuerier) SQL() []string {
	out := make([]string, len(tq.Queries))
	for i, q := range tq.Queries {
		out[i] = q.SQL
	}
	return out
}

type testResult struct{}

func (testResult) LastInsertId() (int64, error) { return 0, nil }
func (testResult) RowsAffected() (int64, error) { return 0, nil }
