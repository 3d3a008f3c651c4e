package testdata

import "time"

//ormgen:table movie
type Movie struct {
	ID       int       `db:"id,type=INT,primaryKey,autoIncrement"`
	Title    string    `db:"title,type=VARCHAR(255),notNull"`
	Price    float64   `db:",type=DECIMAL(10,2)"`
	Released time.Time `db:"released_on,type=DATE"`
	Rating   *int      `db:"rating,type=SMALLINT"`
	Posters  []Picture `db:"-"`
	cache    string
}

// Picture is a still or a poster.
//
//ormgen:table picture
type Picture struct {
	ID   int    `db:"id,type=INT,primaryKey,autoIncrement"`
	Path string `db:"path,type=VARCHAR(255),notNull"`
}

type (
	//ormgen:table movie_picture
	MoviePicture struct {
		MovieID   int `db:"movie_id,type=INT,primaryKey,notNull,fk=movie(id)"`
		PictureID int `db:"picture_id,type=INT,primaryKey,notNull,fk=picture( id )"`
	}

	// Untagged is not an entity.
	Untagged struct {
		Name string
	}
)
