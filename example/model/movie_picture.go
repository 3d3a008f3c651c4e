package model

//go:generate go run github.com/mickamy/sqlbase -type=MoviePicture

// MoviePicture links a picture to a movie.
//
//ormgen:table movie_picture
type MoviePicture struct {
	MovieID   int  `db:"movie_id,type=INT,primaryKey,notNull,fk=movie(id)"`
	PictureID int  `db:"picture_id,type=INT,primaryKey,notNull,fk=picture(id)"`
	Poster    bool `db:"poster,type=BOOLEAN,notNull"`
}
