package orm

import (
	"database/sql/driver"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/mickamy/sqlbase/config"
)

const defaultMySQLPort = "3306"

// ConnectorFunc builds the driver connector a Manager opens its session
// with.
type ConnectorFunc func(cfg config.Config) (driver.Connector, error)

// MySQLConnector is the default ConnectorFunc.
func MySQLConnector(cfg config.Config) (driver.Connector, error) {
	mc, err := MySQLConfig(cfg)
	if err != nil {
		return nil, err
	}
	return mysql.NewConnector(mc) //nolint:wrapcheck // thin wrapper
}

// MySQLConfig translates the connection settings into a driver config.
//
// cfg.URL may be a JDBC-style URL (jdbc:mysql://host:port/db?params), a
// mysql://host:port/db?params URL, or a go-sql-driver DSN. Query parameters
// are passed to the driver as DSN parameters; on a JDBC URL the common
// Connector/J properties are first translated or dropped (see jdbcParams).
// User and password always come from cfg.User and cfg.Password.
func MySQLConfig(cfg config.Config) (*mysql.Config, error) {
	raw, jdbc := strings.CutPrefix(cfg.URL, "jdbc:")

	dsn := raw
	if strings.HasPrefix(raw, "mysql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "orm: parse url %q", cfg.URL)
		}
		if u.Host == "" {
			return nil, errors.Errorf("orm: url %q has no host", cfg.URL)
		}
		addr := u.Host
		if u.Port() == "" {
			addr = net.JoinHostPort(u.Hostname(), defaultMySQLPort)
		}
		dsn = "tcp(" + addr + ")/" + strings.TrimPrefix(u.Path, "/")
		query := u.RawQuery
		if jdbc {
			query = translateJDBCParams(u.Query()).Encode()
		}
		if query != "" {
			dsn += "?" + query
		}
	}

	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "orm: parse url %q", cfg.URL)
	}
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	return mc, nil
}

// jdbcParams maps Connector/J properties to DSN parameters. The driver sends
// unknown parameters as session variables, so properties with no DSN
// counterpart map to "" and are dropped.
var jdbcParams = map[string]string{
	"useSSL":                        "tls",
	"serverTimezone":                "loc",
	"allowPublicKeyRetrieval":       "",
	"autoReconnect":                 "",
	"cachePrepStmts":                "",
	"characterEncoding":             "",
	"rewriteBatchedStatements":      "",
	"useJDBCCompliantTimezoneShift": "",
	"useLegacyDatetimeCode":         "",
	"useUnicode":                    "",
	"verifyServerCertificate":       "",
	"zeroDateTimeBehavior":          "",
}

func translateJDBCParams(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vs := range q {
		name, known := jdbcParams[k]
		switch {
		case !known:
			out[k] = vs
		case name == "":
		case q.Has(name):
		case name == "tls" && vs[0] == "true":
			// Connector/J encrypts without verifying the server certificate
			// unless asked to.
			out.Set(name, "preferred")
		default:
			out.Set(name, vs[0])
		}
	}
	return out
}
