package model

import "github.com/redmane/redmane/pkg/entities"

const (
	TableNameSample         = "samples"
	TableNameSampleMetadata = "samples_metadata"
)

// Sample mapped from table <samples>.
type Sample struct {
	ID           int64            `db:"id"             gorm:"column:id;primaryKey;autoIncrement:true"`
	PatientID    int64            `db:"patient_id"     gorm:"column:patient_id;not null;index"`
	ExtSampleID  string           `db:"ext_sample_id"  gorm:"column:ext_sample_id"`
	ExtSampleURL string           `db:"ext_sample_url" gorm:"column:ext_sample_url"`
	Metadata     []SampleMetadata `gorm:"foreignKey:SampleID"`
}

func (Sample) TableName() string {
	return TableNameSample
}

// SampleMetadata mapped from table <samples_metadata>.
type SampleMetadata struct {
	ID       int64  `db:"id"        gorm:"column:id;primaryKey;autoIncrement:true"`
	SampleID int64  `db:"sample_id" gorm:"column:sample_id;not null;index"`
	Key      string `db:"key"       gorm:"column:key;not null"`
	Value    string `db:"value"     gorm:"column:value"`
}

func (SampleMetadata) TableName() string {
	return TableNameSampleMetadata
}

func (m SampleMetadata) ToEntity() entities.SampleMetadata {
	return entities.SampleMetadata{
		ID:       m.ID,
		SampleID: m.SampleID,
		Key:      m.Key,
		Value:    m.Value,
	}
}

// SampleColumns are the sample fields shared by the flat join rows.
type SampleColumns struct {
	SampleID        int64
	SamplePatientID int64
	ExtSampleID     string
	ExtSampleURL    string
}

func (c SampleColumns) ToEntity(metadata []entities.SampleMetadata) entities.SampleWithoutPatient {
	return entities.SampleWithoutPatient{
		ID:           c.SampleID,
		PatientID:    c.SamplePatientID,
		ExtSampleID:  c.ExtSampleID,
		ExtSampleURL: c.ExtSampleURL,
		Metadata:     metadata,
	}
}

// SampleMetadataRow is one row of samples LEFT JOIN samples_metadata.
// The metadata columns are nil when the sample has no metadata.
type SampleMetadataRow struct {
	SampleColumns
	MetadataID    *int64
	MetadataKey   *string
	MetadataValue *string
}

func (r SampleMetadataRow) Metadata() (entities.SampleMetadata, bool) {
	if r.MetadataID == nil {
		return entities.SampleMetadata{}, false
	}

	return entities.SampleMetadata{
		ID:       *r.MetadataID,
		SampleID: r.SampleID,
		Key:      derefString(r.MetadataKey),
		Value:    derefString(r.MetadataValue),
	}, true
}

// SampleWithPatientRow is one row of samples LEFT JOIN samples_metadata JOIN patients.
type SampleWithPatientRow struct {
	SampleMetadataRow
	PatientColumns
}

// SampleWithPatient pairs a sample with its owning patient, the parent of a grouped row.
type SampleWithPatient struct {
	Sample  SampleColumns
	Patient PatientColumns
}

func (r SampleWithPatientRow) Parent() SampleWithPatient {
	return SampleWithPatient{Sample: r.SampleColumns, Patient: r.PatientColumns}
}
