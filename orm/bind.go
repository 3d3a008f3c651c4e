package orm

import (
	"database/sql"
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

var timeType = reflect.TypeOf(time.Time{})

// bindValue converts an entity value to a driver argument for a column of
// type t. NULLs are sent as the sql.Null* matching the column family so the
// driver gets a typed parameter.
func bindValue(v any, t SQLType) (any, error) {
	family := t.Family()
	if v == nil {
		return nullFor(family), nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		return vr, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nullFor(family), nil
		}
		rv = rv.Elem()
		if vr, ok := rv.Interface().(driver.Valuer); ok {
			return vr, nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		if family == FamilyInteger {
			if rv.Bool() {
				return int64(1), nil
			}
			return int64(0), nil
		}
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if family == FamilyBool {
			return rv.Int() != 0, nil
		}
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		if family == FamilyBinary {
			return []byte(rv.String()), nil
		}
		return rv.String(), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Bytes(), nil
		}
	case reflect.Struct:
		if rv.Type() == timeType {
			return rv.Interface(), nil
		}
	default:
	}
	return nil, errors.Wrapf(ErrAccess, "cannot bind %s value to %s column", rv.Type(), t)
}

func nullFor(f TypeFamily) any {
	switch f {
	case FamilyInteger:
		return sql.NullInt64{}
	case FamilyFloat:
		return sql.NullFloat64{}
	case FamilyBool:
		return sql.NullBool{}
	case FamilyTemporal:
		return sql.NullTime{}
	case FamilyBinary:
		return []byte(nil)
	default:
		return sql.NullString{}
	}
}
