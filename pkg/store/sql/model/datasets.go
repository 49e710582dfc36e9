package model

import "github.com/redmane/redmane/pkg/entities"

const (
	TableNameDataset         = "datasets"
	TableNameDatasetMetadata = "datasets_metadata"
)

// Dataset mapped from table <datasets>.
type Dataset struct {
	ID        int64             `db:"id"         gorm:"column:id;primaryKey;autoIncrement:true"`
	ProjectID int64             `db:"project_id" gorm:"column:project_id;not null;index"`
	Name      string            `db:"name"       gorm:"column:name;not null"`
	Metadata  []DatasetMetadata `gorm:"foreignKey:DatasetID"`
	RawFiles  []RawFile         `gorm:"foreignKey:DatasetID"`
}

func (Dataset) TableName() string {
	return TableNameDataset
}

func (d Dataset) ToEntity() *entities.Dataset {
	return &entities.Dataset{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
	}
}

// DatasetMetadata mapped from table <datasets_metadata>.
// Keys are not unique per dataset.
type DatasetMetadata struct {
	ID        int64  `db:"id"         gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID int64  `db:"dataset_id" gorm:"column:dataset_id;not null;index"`
	Key       string `db:"key"        gorm:"column:key;not null"`
	Value     string `db:"value"      gorm:"column:value"`
}

func (DatasetMetadata) TableName() string {
	return TableNameDatasetMetadata
}

func (m DatasetMetadata) ToEntity() entities.DatasetMetadata {
	return entities.DatasetMetadata{
		ID:        m.ID,
		DatasetID: m.DatasetID,
		Key:       m.Key,
		Value:     m.Value,
	}
}
