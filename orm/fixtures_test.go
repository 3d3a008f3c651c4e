package orm_test

import (
	"time"

	"github.com/mickamy/sqlbase/orm"
)

type movie struct {
	ID    int
	Title string
}

func (movie) TableName() string { return "movie" }

func (movie) Schema() []orm.Column {
	return []orm.Column{
		{Name: "id", Type: orm.Int, PrimaryKey: true, AutoIncrement: true},
		{Name: "title", Type: orm.Varchar(255), NotNull: true},
	}
}

func (v movie) Values() []any { return []any{v.ID, v.Title} }

type picture struct {
	ID      int
	Path    string
	Caption *string
	TakenAt *time.Time
}

func (picture) TableName() string { return "picture" }

func (picture) Schema() []orm.Column {
	return []orm.Column{
		{Name: "id", Type: orm.Int, PrimaryKey: true, AutoIncrement: true},
		{Name: "path", Type: orm.Varchar(255), NotNull: true},
		{Name: "caption", Type: orm.Text},
		{Name: "taken_at", Type: orm.DateTime},
	}
}

func (v picture) Values() []any { return []any{v.ID, v.Path, v.Caption, v.TakenAt} }

type moviePicture struct {
	MovieID   int
	PictureID int
	Position  int
}

func (moviePicture) TableName() string { return "movie_picture" }

func (moviePicture) Schema() []orm.Column {
	return []orm.Column{
		{Name: "movie_id", Type: orm.Int, PrimaryKey: true, NotNull: true, ForeignKey: &orm.ForeignKey{Table: "movie", Column: "id"}},
		{Name: "picture_id", Type: orm.Int, PrimaryKey: true, NotNull: true, ForeignKey: &orm.ForeignKey{Table: "picture", Column: "id"}},
		{Name: "position", Type: orm.SmallInt},
	}
}

func (v moviePicture) Values() []any { return []any{v.MovieID, v.PictureID, v.Position} }

// auditLog has no primary key.
type auditLog struct{ Message string }

func (auditLog) TableName() string { return "audit_log" }

func (auditLog) Schema() []orm.Column {
	return []orm.Column{{Name: "message", Type: orm.Text, NotNull: true}}
}

func (v auditLog) Values() []any { return []any{v.Message} }

type untabled struct{}

func (untabled) Schema() []orm.Column { return []orm.Column{{Name: "id", Type: orm.Int}} }

type untyped struct{}

func (untyped) TableName() string { return "untyped" }

func (untyped) Schema() []orm.Column {
	return []orm.Column{{Name: "id", Type: orm.Int}, {Name: "label"}}
}

// shortValues returns fewer values than it declares columns.
type shortValues struct{}

func (shortValues) TableName() string { return "short" }

func (shortValues) Schema() []orm.Column {
	return []orm.Column{{Name: "a", Type: orm.Int}, {Name: "b", Type: orm.Int}}
}

func (shortValues) Values() []any { return []any{1} }

// unbindable declares a column whose value cannot be sent to a database.
type unbindable struct{}

func (unbindable) TableName() string { return "unbindable" }

func (unbindable) Schema() []orm.Column {
	return []orm.Column{{Name: "callback", Type: orm.Text}}
}

func (unbindable) Values() []any { return []any{func() {}} }
