package orm

import (
	"fmt"
	"strings"
)

// SQLType is the column type text emitted into DDL, e.g. "INT" or
// "VARCHAR(255)".
type SQLType string

const (
	Int       SQLType = "INT"
	BigInt    SQLType = "BIGINT"
	SmallInt  SQLType = "SMALLINT"
	Boolean   SQLType = "BOOLEAN"
	Double    SQLType = "DOUBLE"
	Float     SQLType = "FLOAT"
	Text      SQLType = "TEXT"
	Date      SQLType = "DATE"
	DateTime  SQLType = "DATETIME"
	Timestamp SQLType = "TIMESTAMP"
	Blob      SQLType = "BLOB"
)

// Varchar returns VARCHAR(n).
func Varchar(n int) SQLType { return SQLType(fmt.Sprintf("VARCHAR(%d)", n)) }

// Char returns CHAR(n).
func Char(n int) SQLType { return SQLType(fmt.Sprintf("CHAR(%d)", n)) }

// Decimal returns DECIMAL(precision,scale).
func Decimal(precision, scale int) SQLType {
	return SQLType(fmt.Sprintf("DECIMAL(%d,%d)", precision, scale))
}

// TypeFamily groups SQL types that bind the same Go value kinds.
type TypeFamily int

const (
	FamilyString TypeFamily = iota
	FamilyInteger
	FamilyFloat
	FamilyBool
	FamilyTemporal
	FamilyBinary
)

func (f TypeFamily) String() string {
	switch f {
	case FamilyInteger:
		return "integer"
	case FamilyFloat:
		return "float"
	case FamilyBool:
		return "bool"
	case FamilyTemporal:
		return "temporal"
	case FamilyBinary:
		return "binary"
	default:
		return "string"
	}
}

// Family classifies t by its base keyword. Unknown keywords are treated as
// strings.
func (t SQLType) Family() TypeFamily {
	switch t.base() {
	case "INT", "INTEGER", "BIGINT", "SMALLINT", "MEDIUMINT", "TINYINT", "SERIAL", "YEAR":
		return FamilyInteger
	case "DOUBLE", "FLOAT", "REAL", "DECIMAL", "NUMERIC":
		return FamilyFloat
	case "BOOL", "BOOLEAN", "BIT":
		return FamilyBool
	case "DATE", "DATETIME", "TIMESTAMP", "TIME":
		return FamilyTemporal
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY":
		return FamilyBinary
	default:
		return FamilyString
	}
}

// base returns the upper-cased keyword before any "(" or modifier,
// e.g. "int(11) unsigned" -> "INT".
func (t SQLType) base() string {
	s := strings.TrimSpace(string(t))
	if i := strings.IndexAny(s, "( "); i >= 0 {
		s = s[:i]
	}
	return strings.ToUpper(s)
}
