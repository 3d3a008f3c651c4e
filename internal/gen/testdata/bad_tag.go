package testdata

//ormgen:table award
type Award struct {
	MovieID int `db:"movie_id,type=INT,fk=movie"`
}
