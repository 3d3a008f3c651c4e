package orm

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned when an entity does not declare the metadata
	// SQL generation needs (table name, column types, foreign key targets).
	// It signals a programming mistake and is reported before any statement
	// reaches the database.
	ErrConfiguration = errors.New("orm: invalid entity declaration")

	// ErrConnection is returned when the Manager fails to open or close its
	// database session.
	ErrConnection = errors.New("orm: connection failure")

	// ErrAccess is returned when an entity's column values cannot be read or
	// bound for insert.
	ErrAccess = errors.New("orm: column value not accessible")
)

// connectionError is a session failure. It matches ErrConnection and
// unwraps to the driver error.
type connectionError struct {
	op  string
	err error
}

func (e *connectionError) Error() string {
	return ErrConnection.Error() + ": " + e.op + ": " + e.err.Error()
}

func (e *connectionError) Is(target error) bool { return target == ErrConnection }
func (e *connectionError) Unwrap() error        { return e.err }
func (e *connectionError) Cause() error         { return e.err }
