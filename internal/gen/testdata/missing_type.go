package testdata

//ormgen:table review
type Review struct {
	ID   int    `db:"id,type=INT,primaryKey"`
	Body string `db:"body"`
}
