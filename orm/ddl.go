package orm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

const (
	disableForeignKeyChecks = "SET FOREIGN_KEY_CHECKS=0"
	enableForeignKeyChecks  = "SET FOREIGN_KEY_CHECKS=1"
)

// DropTableSQL returns the DROP TABLE IF EXISTS statement for d.
func (d *Descriptor) DropTableSQL() string {
	return "DROP TABLE IF EXISTS " + d.Table
}

// CreateTableSQL returns the CREATE TABLE statement for d: one clause per
// column in declared order, then the primary key (omitted when no column is
// primary), then one named constraint per foreign key.
func (d *Descriptor) CreateTableSQL() string {
	clauses := make([]string, 0, len(d.Columns)+1)
	for _, c := range d.Columns {
		clauses = append(clauses, columnClause(c))
	}
	if pk := d.PrimaryKey(); len(pk) > 0 {
		clauses = append(clauses, "PRIMARY KEY ("+strings.Join(pk, ", ")+")")
	}
	for _, c := range d.ForeignKeys() {
		clauses = append(clauses, foreignKeyClause(d.Table, c))
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(d.Table)
	b.WriteString("( ")
	b.WriteString(strings.Join(clauses, ", "))
	b.WriteString(" )")
	return b.String()
}

func columnClause(c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(string(c.Type))
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.AutoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	return b.String()
}

// foreignKeyClause renders
// CONSTRAINT FK_<target><table> FOREIGN KEY (<col>) REFERENCES <target>(<targetCol>).
func foreignKeyClause(table string, c Column) string {
	fk := c.ForeignKey
	return "CONSTRAINT FK_" + fk.Table + table +
		" FOREIGN KEY (" + c.Name + ") REFERENCES " + fk.Table + "(" + fk.Column + ")"
}

// CreateTable drops and recreates the table declared by v.
//
// q must be a single session (*sql.Conn or *sql.Tx): foreign key checks are
// switched off for the drop and create and switched back on afterwards, even
// when one of them fails. A declaration error is returned before anything is
// sent.
func CreateTable(ctx context.Context, q Querier, v any) error {
	d, err := Describe(v)
	if err != nil {
		return err
	}
	return d.createTable(ctx, q)
}

func (d *Descriptor) createTable(ctx context.Context, q Querier) (err error) {
	drop, create := d.DropTableSQL(), d.CreateTableSQL()

	if _, err := q.ExecContext(ctx, disableForeignKeyChecks); err != nil {
		return err //nolint:wrapcheck // pass through
	}
	defer func() {
		if _, rerr := q.ExecContext(ctx, enableForeignKeyChecks); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if _, err := q.ExecContext(ctx, drop); err != nil {
		return err //nolint:wrapcheck // pass through
	}
	if _, err := q.ExecContext(ctx, create); err != nil {
		return err //nolint:wrapcheck // pass through
	}
	return nil
}

// DependencyOrder returns vs reordered so that every entity comes after the
// entities whose tables it references. Entities without a dependency between
// them keep their relative order. References to tables outside vs and
// self-references are ignored; a reference cycle is ErrConfiguration.
func DependencyOrder(vs ...any) ([]any, error) {
	descs := make([]*Descriptor, len(vs))
	index := make(map[string]int, len(vs))
	for i, v := range vs {
		d, err := Describe(v)
		if err != nil {
			return nil, err
		}
		if _, dup := index[d.Table]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "table %s is declared by more than one entity", d.Table)
		}
		descs[i] = d
		index[d.Table] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(vs))
	ordered := make([]any, 0, len(vs))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return errors.Wrapf(ErrConfiguration, "foreign key cycle through table %s", descs[i].Table)
		}
		state[i] = visiting
		for _, c := range descs[i].ForeignKeys() {
			j, ok := index[c.ForeignKey.Table]
			if !ok || j == i {
				continue
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = done
		ordered = append(ordered, vs[i])
		return nil
	}

	for i := range vs {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
