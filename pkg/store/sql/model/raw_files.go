package model

import "github.com/redmane/redmane/pkg/entities"

const (
	TableNameRawFile         = "raw_files"
	TableNameRawFileMetadata = "raw_files_metadata"
)

// RawFile mapped from table <raw_files>.
type RawFile struct {
	ID        int64             `db:"id"         gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID int64             `db:"dataset_id" gorm:"column:dataset_id;not null;index"`
	Path      string            `db:"path"       gorm:"column:path;not null"`
	Metadata  []RawFileMetadata `gorm:"foreignKey:RawFileID"`
}

func (RawFile) TableName() string {
	return TableNameRawFile
}

func NewRawFileFromEntity(input *entities.RawFileCreate) RawFile {
	metadata := make([]RawFileMetadata, len(input.Metadata))
	for i, m := range input.Metadata {
		metadata[i] = RawFileMetadata{
			Key:   m.MetadataKey,
			Value: m.MetadataValue,
		}
	}

	return RawFile{
		DatasetID: input.DatasetID,
		Path:      input.Path,
		Metadata:  metadata,
	}
}

// RawFileMetadata mapped from table <raw_files_metadata>.
type RawFileMetadata struct {
	ID        int64  `db:"metadata_id"    gorm:"column:metadata_id;primaryKey;autoIncrement:true"`
	RawFileID int64  `db:"raw_file_id"    gorm:"column:raw_file_id;not null;index"`
	Key       string `db:"metadata_key"   gorm:"column:metadata_key;not null"`
	Value     string `db:"metadata_value" gorm:"column:metadata_value"`
}

func (RawFileMetadata) TableName() string {
	return TableNameRawFileMetadata
}

// RawFileSampleRow is a raw file with the value of its sample_id metadata entry.
type RawFileSampleRow struct {
	ID       int64
	Path     string
	SampleID *string
}
