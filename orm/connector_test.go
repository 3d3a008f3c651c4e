package orm_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/mickamy/sqlbase/config"
	"github.com/mickamy/sqlbase/orm"
)

func TestMySQLConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		addr   string
		dbName string
		params map[string]string
	}{
		{
			name:   "jdbc url",
			url:    "jdbc:mysql://localhost:3306/movies",
			addr:   "localhost:3306",
			dbName: "movies",
		},
		{
			name:   "jdbc url without port",
			url:    "jdbc:mysql://db.internal/movies",
			addr:   "db.internal:3306",
			dbName: "movies",
		},
		{
			name:   "mysql url with params",
			url:    "mysql://127.0.0.1:3307/movies?autocommit=1",
			addr:   "127.0.0.1:3307",
			dbName: "movies",
			params: map[string]string{"autocommit": "1"},
		},
		{
			name:   "driver dsn",
			url:    "tcp(10.0.0.5:3306)/movies",
			addr:   "10.0.0.5:3306",
			dbName: "movies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc, err := orm.MySQLConfig(config.Config{URL: tt.url, User: "root", Password: "secret"})
			if err != nil {
				t.Fatalf("MySQLConfig: %v", err)
			}
			if mc.Addr != tt.addr {
				t.Errorf("Addr = %q, want %q", mc.Addr, tt.addr)
			}
			if mc.DBName != tt.dbName {
				t.Errorf("DBName = %q, want %q", mc.DBName, tt.dbName)
			}
			if mc.User != "root" || mc.Passwd != "secret" {
				t.Errorf("credentials = %q/%q", mc.User, mc.Passwd)
			}
			for k, v := range tt.params {
				if mc.Params[k] != v {
					t.Errorf("Params[%q] = %q, want %q", k, mc.Params[k], v)
				}
			}
		})
	}
}

func TestMySQLConfigErrors(t *testing.T) {
	t.Parallel()

	for _, url := range []string{"jdbc:mysql:///movies", "mysql://%zz/movies"} {
		if _, err := orm.MySQLConfig(config.Config{URL: url, User: "root"}); err == nil {
			t.Errorf("MySQLConfig(%q): want error", url)
		}
	}
}

func TestMySQLConfigTranslatesJDBCParams(t *testing.T) {
	t.Parallel()

	mc, err := orm.MySQLConfig(config.Config{
		URL: "jdbc:mysql://localhost:3306/movies?useSSL=false&serverTimezone=UTC" +
			"&useUnicode=true&characterEncoding=UTF-8&autoReconnect=true&autocommit=1",
		User: "root",
	})
	if err != nil {
		t.Fatalf("MySQLConfig: %v", err)
	}
	if mc.TLSConfig != "false" || mc.TLS != nil {
		t.Errorf("TLSConfig = %q, TLS = %v, want plaintext", mc.TLSConfig, mc.TLS)
	}
	if mc.Loc != time.UTC {
		t.Errorf("Loc = %v, want UTC", mc.Loc)
	}
	if len(mc.Params) != 1 || mc.Params["autocommit"] != "1" {
		t.Errorf("Params = %v, want only autocommit", mc.Params)
	}
}

func TestMySQLConfigJDBCParamEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		tls  string
		loc  string
	}{
		{
			name: "useSSL=true encrypts without verification",
			url:  "jdbc:mysql://localhost/movies?useSSL=true",
			tls:  "preferred",
			loc:  "UTC",
		},
		{
			name: "driver parameter wins",
			url:  "jdbc:mysql://localhost/movies?serverTimezone=UTC&loc=Asia%2FTokyo",
			loc:  "Asia/Tokyo",
		},
		{
			name: "escaped zone name",
			url:  "jdbc:mysql://localhost/movies?serverTimezone=Europe%2FParis",
			loc:  "Europe/Paris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc, err := orm.MySQLConfig(config.Config{URL: tt.url, User: "root"})
			if err != nil {
				t.Fatalf("MySQLConfig: %v", err)
			}
			if mc.TLSConfig != tt.tls {
				t.Errorf("TLSConfig = %q, want %q", mc.TLSConfig, tt.tls)
			}
			if got := mc.Loc.String(); got != tt.loc {
				t.Errorf("Loc = %q, want %q", got, tt.loc)
			}
			if len(mc.Params) != 0 {
				t.Errorf("Params = %v, want none", mc.Params)
			}
		})
	}
}
