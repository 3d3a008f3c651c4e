package testdata

//ormgen:table pair
type Pair struct {
	ID   int    `db:"id,type=INT,primaryKey"`
	A, B int    `db:",type=INT,notNull,fk=other(id)"`
	Tail string `db:"tail,type=TEXT"`
}
