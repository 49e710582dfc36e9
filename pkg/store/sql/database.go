package sql

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/ncruces/go-sqlite3/embed" // sqlite3 wasm binary
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"

	"github.com/redmane/redmane/pkg/config"
)

// newDialector picks the gorm dialect from the scheme of the store URL.
//
//nolint:ireturn
func newDialector(storeURL string) (gorm.Dialector, error) {
	if path, ok := strings.CutPrefix(storeURL, "sqlite://"); ok {
		return gormlite.Open(path), nil
	}

	uri, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store URL %q: %w", storeURL, err)
	}

	switch uri.Scheme {
	case "postgres", "postgresql":
		return postgres.Open(storeURL), nil
	case "mysql":
		// user:password@tcp(host:port)/dbname?params
		dsn := fmt.Sprintf("%s@tcp(%s)%s", uri.User.String(), uri.Host, uri.Path)
		if uri.RawQuery != "" {
			dsn += "?" + uri.RawQuery
		}

		return mysql.Open(dsn), nil
	case "mssql", "sqlserver":
		uri.Scheme = "sqlserver"

		return sqlserver.Open(uri.String()), nil
	default:
		return nil, fmt.Errorf("unsupported store URL scheme %q", uri.Scheme)
	}
}

// NewDatabase opens the store database and configures its connection pool.
func NewDatabase(logger *logrus.Logger, cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := newDialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: NewLoggerAdaptor(logger, LoggerAdaptorConfig{
			SlowThreshold:             cfg.SlowThreshold,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", dialector.Name(), err)
	}

	pool, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection pool: %w", err)
	}

	if dialector.Name() == "sqlite" {
		// One writer at a time; a single connection also keeps :memory: databases alive.
		pool.SetMaxOpenConns(1)
		pool.SetMaxIdleConns(1)
		pool.SetConnMaxLifetime(0)
	} else {
		pool.SetMaxIdleConns(cfg.MaxIdleConns)
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return database, nil
}
