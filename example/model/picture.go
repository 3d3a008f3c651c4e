package model

//go:generate go run github.com/mickamy/sqlbase -type=Picture

// Picture is an image file: a poster or a still.
//
//ormgen:table picture
type Picture struct {
	ID      int     `db:"id,type=INT,primaryKey,autoIncrement"`
	Path    string  `db:"path,type=VARCHAR(255),notNull"`
	Caption *string `db:"caption,type=TEXT"`
}
