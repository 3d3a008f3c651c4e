package testdata

// Draft has columns but no table directive.
type Draft struct {
	ID int `db:"id,type=INT,primaryKey"`
}
