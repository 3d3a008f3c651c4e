package orm_test

import (
	"context"
	"slices"
	"testing"

	"github.com/mickamy/sqlbase/orm"
)

type recordingLogger struct {
	queries []string
}

func (l *recordingLogger) Log(_ context.Context, query string, _ ...any) {
	l.queries = append(l.queries, query)
}

func TestDebug(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier()
	logger := &recordingLogger{}
	q := orm.Debug(tq, logger)

	if err := orm.CreateTable(t.Context(), q, movie{}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if err := orm.Insert(t.Context(), q, movie{Title: "Alien"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if !slices.Equal(logger.queries, tq.SQL()) {
		t.Errorf("logged %q, executed %q", logger.queries, tq.SQL())
	}
	if len(logger.queries) != 5 {
		t.Errorf("logged %d statements, want 5", len(logger.queries))
	}
}
