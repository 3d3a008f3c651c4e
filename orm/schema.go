package orm

import (
	"reflect"

	"github.com/pkg/errors"
)

// Schemer declares an entity's columns. The slice order is the column order
// used by both CREATE TABLE and INSERT, so it must be stable.
type Schemer interface {
	Schema() []Column
}

// Valuer returns an entity's column values in exactly Schema() order.
// Only Insert requires it.
type Valuer interface {
	Values() []any
}

// ForeignKey points a column at a column of another table.
type ForeignKey struct {
	Table  string
	Column string
}

// Column describes one table column.
type Column struct {
	Name          string
	Type          SQLType
	PrimaryKey    bool
	NotNull       bool
	AutoIncrement bool
	ForeignKey    *ForeignKey
}

// Descriptor is the table name and ordered columns read from an entity.
type Descriptor struct {
	Table   string
	Columns []Column
}

// Describe reads the table and column declarations of v.
// Pass a value (e.g. model.Movie{}); the declarations are type-level, so the
// field contents do not matter, but a nil pointer is rejected. Any missing or
// malformed declaration is reported as ErrConfiguration.
func Describe(v any) (*Descriptor, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, errors.Wrapf(ErrConfiguration, "%T is a nil pointer", v)
	}
	tn, ok := v.(TableNamer)
	if !ok || tn.TableName() == "" {
		return nil, errors.Wrapf(ErrConfiguration, "%T must declare a table name", v)
	}
	sc, ok := v.(Schemer)
	if !ok {
		return nil, errors.Wrapf(ErrConfiguration, "%T must declare its columns", v)
	}

	declared := sc.Schema()
	columns := make([]Column, len(declared))
	seen := make(map[string]struct{}, len(declared))
	for i, c := range declared {
		if c.Name == "" {
			return nil, errors.Wrapf(ErrConfiguration, "%T column #%d has no name", v, i+1)
		}
		if c.Type == "" {
			return nil, errors.Wrapf(ErrConfiguration, "%T.%s must declare a column type", v, c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "%T.%s is declared twice", v, c.Name)
		}
		seen[c.Name] = struct{}{}
		if fk := c.ForeignKey; fk != nil {
			if fk.Table == "" || fk.Column == "" {
				return nil, errors.Wrapf(ErrConfiguration, "%T.%s foreign key must name a table and a column", v, c.Name)
			}
			ref := *fk
			c.ForeignKey = &ref
		}
		columns[i] = c
	}

	return &Descriptor{Table: tn.TableName(), Columns: columns}, nil
}

// PrimaryKey returns the primary key column names in column order.
func (d *Descriptor) PrimaryKey() []string {
	var keys []string
	for _, c := range d.Columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return keys
}

// ForeignKeys returns the columns that reference another table.
func (d *Descriptor) ForeignKeys() []Column {
	var fks []Column
	for _, c := range d.Columns {
		if c.ForeignKey != nil {
			fks = append(fks, c)
		}
	}
	return fks
}
