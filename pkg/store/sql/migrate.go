package sql

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/redmane/redmane/pkg/store/sql/model"
)

// Migrate creates the schema on an empty database and applies pending migrations.
// Running it again on an up to date database is a no-op.
func Migrate(database *gorm.DB) error {
	migrator := gormigrate.New(database, gormigrate.DefaultOptions, []*gormigrate.Migration{})

	migrator.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&model.Project{},
			&model.Dataset{},
			&model.DatasetMetadata{},
			&model.Patient{},
			&model.PatientMetadata{},
			&model.Sample{},
			&model.SampleMetadata{},
			&model.RawFile{},
			&model.RawFileMetadata{},
		)
	})

	if err := migrator.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
