package orm

import "reflect"

// TableNamer declares the table an entity type maps to.
// Every entity must implement it with a non-empty name.
type TableNamer interface {
	TableName() string
}

// DescribeType is Describe for a type parameter. Declarations implemented
// on the pointer receiver are found as well as value receivers. A pointer
// type parameter describes a freshly allocated element.
func DescribeType[T any]() (*Descriptor, error) {
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Pointer {
		return Describe(reflect.New(t.Elem()).Interface())
	}
	var zero T
	if _, ok := any(zero).(TableNamer); ok {
		return Describe(zero)
	}
	return Describe(&zero)
}
