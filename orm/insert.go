package orm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// BoundValue is one column of an INSERT with the value read from the entity
// and the SQL type used to bind it.
type BoundValue struct {
	Column string
	Value  any
	Type   SQLType
}

// InsertStatement is a parameterized INSERT for one entity instance.
// Auto-increment columns are never part of it; the database assigns them.
type InsertStatement struct {
	Table  string
	Values []BoundValue
}

// BuildInsert reads the declarations and current values of v.
// v must implement TableNamer, Schemer and Valuer, and Values() must return
// exactly one value per declared column.
func BuildInsert(v any) (*InsertStatement, error) {
	d, err := Describe(v)
	if err != nil {
		return nil, err
	}
	vr, ok := v.(Valuer)
	if !ok {
		return nil, errors.Wrapf(ErrAccess, "%T does not expose its column values", v)
	}
	values := vr.Values()
	if len(values) != len(d.Columns) {
		return nil, errors.Wrapf(ErrAccess, "%T returned %d values for %d columns", v, len(values), len(d.Columns))
	}

	stmt := &InsertStatement{Table: d.Table}
	for i, c := range d.Columns {
		if c.AutoIncrement {
			continue
		}
		stmt.Values = append(stmt.Values, BoundValue{Column: c.Name, Value: values[i], Type: c.Type})
	}
	return stmt, nil
}

// Columns returns the inserted column names in bind order.
func (s *InsertStatement) Columns() []string {
	cols := make([]string, len(s.Values))
	for i, v := range s.Values {
		cols[i] = v.Column
	}
	return cols
}

// SQL returns INSERT INTO <table> (<cols>) VALUES (?, ...).
func (s *InsertStatement) SQL() string {
	placeholders := make([]string, len(s.Values))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.Table,
		strings.Join(s.Columns(), ", "),
		strings.Join(placeholders, ", "),
	)
}

// Args returns the positional arguments for SQL(), each coerced by its
// column's SQL type. Placeholder i (1-based) binds Args()[i-1].
func (s *InsertStatement) Args() ([]any, error) {
	args := make([]any, len(s.Values))
	for i, v := range s.Values {
		arg, err := bindValue(v.Value, v.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", s.Table, v.Column)
		}
		args[i] = arg
	}
	return args, nil
}

// Insert builds the INSERT for v and executes it on q.
func Insert(ctx context.Context, q Querier, v any) error {
	stmt, err := BuildInsert(v)
	if err != nil {
		return err
	}
	args, err := stmt.Args()
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, stmt.SQL(), args...)
	return err //nolint:wrapcheck // pass through
}
