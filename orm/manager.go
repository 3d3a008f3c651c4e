package orm

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mickamy/sqlbase/config"
	"github.com/mickamy/sqlbase/internal/logging"
)

var errInvalidConn = errors.New("orm: driver connection is no longer valid")

// Manager owns a single database session.
//
// It starts Closed. CreateTable, CreateTables, Insert and Select open the
// session when it is Closed and close it again when they return; when the
// caller has opened it with Open, it is left open. A Manager must not be
// used from several goroutines at once.
type Manager struct {
	cfg     config.Config
	connect ConnectorFunc
	logger  zerolog.Logger

	db   *sql.DB
	conn *sql.Conn
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for connection errors and executed statements.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithConnector replaces the MySQL connector, e.g. with a test driver.
func WithConnector(fn ConnectorFunc) Option {
	return func(m *Manager) { m.connect = fn }
}

// NewManager loads the connection settings from the named resource (see
// config.Load; empty means config.DefaultName) and returns a Closed Manager.
func NewManager(resource string, opts ...Option) (*Manager, error) {
	cfg, err := config.Load(resource)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped
	}
	return NewManagerWithConfig(cfg, opts...), nil
}

// NewManagerWithConfig returns a Closed Manager for cfg.
func NewManagerWithConfig(cfg config.Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:     cfg,
		connect: MySQLConnector,
		logger:  logging.NewWithComponent(logging.DefaultConfig(), "orm"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open establishes the session. Opening an open Manager does nothing.
// On failure the error is logged, the Manager stays Closed and the returned
// error matches ErrConnection.
func (m *Manager) Open(ctx context.Context) error {
	if m.conn != nil {
		return nil
	}
	if err := m.dial(ctx); err != nil {
		err = errors.WithStack(&connectionError{op: "open", err: err})
		m.logger.Error().Stack().Err(err).Msg("open connection")
		return err
	}
	m.logger.Debug().Msg("connection opened")
	return nil
}

func (m *Manager) dial(ctx context.Context) error {
	connector, err := m.connect(m.cfg)
	if err != nil {
		return err
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return err //nolint:wrapcheck // wrapped by Open
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return err //nolint:wrapcheck // wrapped by Open
	}

	m.db, m.conn = db, conn
	return nil
}

// Close releases the session. Closing a Closed Manager does nothing.
// The Manager is Closed afterwards even when releasing fails; the failure is
// logged and returned matching ErrConnection.
func (m *Manager) Close() error {
	if m.conn == nil {
		return nil
	}
	err := m.release()
	if err != nil {
		err = errors.WithStack(&connectionError{op: "close", err: err})
		m.logger.Error().Stack().Err(err).Msg("close connection")
		return err
	}
	m.logger.Debug().Msg("connection closed")
	return nil
}

func (m *Manager) release() error {
	conn, db := m.conn, m.db
	m.conn, m.db = nil, nil

	err := conn.Close()
	if derr := db.Close(); err == nil {
		err = derr
	}
	return err //nolint:wrapcheck // wrapped by Close
}

// IsOpen reports whether the session is usable. A Manager that was never
// opened, was closed, or whose driver connection reports itself invalid (or
// cannot be checked) is not open; in the last two cases the stale handles
// are released so the next operation opens a fresh session.
func (m *Manager) IsOpen() bool {
	if m.conn == nil {
		return false
	}
	err := m.conn.Raw(func(dc any) error {
		if v, ok := dc.(driver.Validator); ok && !v.IsValid() {
			return errInvalidConn
		}
		return nil
	})
	if err != nil {
		m.logger.Warn().Err(err).Msg("connection status check failed")
		_ = m.release()
		return false
	}
	return true
}

// IsClosed is the negation of IsOpen.
func (m *Manager) IsClosed() bool {
	return !m.IsOpen()
}

// CreateTable drops and recreates the table declared by v.
func (m *Manager) CreateTable(ctx context.Context, v any) error {
	d, err := Describe(v)
	if err != nil {
		return err
	}
	return m.withSession(ctx, func(q Querier) error {
		return m.createTable(ctx, q, d)
	})
}

// CreateTables drops and recreates the tables declared by vs, referenced
// tables first (see DependencyOrder). All declarations are checked before
// the first statement is sent.
func (m *Manager) CreateTables(ctx context.Context, vs ...any) error {
	ordered, err := DependencyOrder(vs...)
	if err != nil {
		return err
	}
	descs := make([]*Descriptor, len(ordered))
	for i, v := range ordered {
		if descs[i], err = Describe(v); err != nil {
			return err
		}
	}
	return m.withSession(ctx, func(q Querier) error {
		for _, d := range descs {
			if err := m.createTable(ctx, q, d); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *Manager) createTable(ctx context.Context, q Querier, d *Descriptor) error {
	m.logger.Info().Str("table", d.Table).Str("sql", d.DropTableSQL()).Msg("drop table")
	m.logger.Info().Str("table", d.Table).Str("sql", d.CreateTableSQL()).Msg("create table")
	return d.createTable(ctx, q)
}

// Insert inserts v. The statement and its arguments are built before the
// session is touched, so a declaration or access error sends nothing.
func (m *Manager) Insert(ctx context.Context, v any) error {
	stmt, err := BuildInsert(v)
	if err != nil {
		return err
	}
	args, err := stmt.Args()
	if err != nil {
		return err
	}
	return m.withSession(ctx, func(q Querier) error {
		_, err := q.ExecContext(ctx, stmt.SQL(), args...)
		return err //nolint:wrapcheck // pass through
	})
}

// Select runs a raw query and hands every row to fn (see Select).
func (m *Manager) Select(ctx context.Context, query string, fn RowHandler, args ...any) error {
	return m.withSession(ctx, func(q Querier) error {
		return Select(ctx, q, query, fn, args...)
	})
}

// withSession runs fn on the session, opening it first and closing it
// afterwards when the Manager was Closed.
func (m *Manager) withSession(ctx context.Context, fn func(q Querier) error) (err error) {
	if !m.IsOpen() {
		if err := m.Open(ctx); err != nil {
			return err
		}
		defer func() {
			if cerr := m.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	return fn(Debug(m.conn, statementLogger{logger: m.logger}))
}

// statementLogger adapts zerolog to Logger.
type statementLogger struct {
	logger zerolog.Logger
}

func (l statementLogger) Log(_ context.Context, query string, args ...any) {
	l.logger.Debug().Str("sql", query).Interface("args", args).Msg("statement")
}
