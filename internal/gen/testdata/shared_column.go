package testdata

//ormgen:table shared
type Shared struct {
	X, Y int `db:"xy,type=INT"`
}
