package sql

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/redmane/redmane/pkg/config"
)

type Store struct {
	db *gorm.DB
}

// quote returns the dialect specific reference to table.column,
// needed for columns named after reserved words such as key and value.
func (s Store) quote(table, column string) string {
	return s.db.Statement.Quote(clause.Column{Table: table, Name: column})
}

func (s Store) Close() error {
	pool, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection pool: %w", err)
	}

	if err := pool.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

func NewSQLStore(logger *logrus.Logger, cfg config.DatabaseConfig) (*Store, error) {
	database, err := NewDatabase(logger, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := Migrate(database); err != nil {
			return nil, err
		}
	}

	return &Store{db: database}, nil
}
